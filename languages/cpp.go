package languages

import (
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"
)

func init() {
	Register(&Language{
		Name:       "cpp",
		Extensions: []string{".cpp", ".cc", ".cxx", ".h", ".hpp", ".hxx", ".hh"},
		Sitter:     cpp.GetLanguage(),
		Battery:    cppBattery,
	})
	Register(&Language{
		Name:       "c",
		Extensions: []string{".c"},
		Sitter:     c.GetLanguage(),
		Battery:    cBattery,
	})
}

// The C++ battery. Function patterns capture the declarator as @name, so
// qualified names ("Foo::bar") come out qualified; the signature is built
// from @returnType and the repeated @parameters captures. Parameters use
// the comma-separated capture shape: a capture on a quantified node only
// reports the first repetition.
var cppBattery = []SymbolQuery{
	{
		Kind: KindFunction,
		Pattern: `
			(function_definition
				type: (_)? @returnType
				declarator: (function_declarator
					declarator: (_) @name
					parameters: (parameter_list
						((parameter_declaration) @parameters
							("," (parameter_declaration) @parameters)*)?))
				body: (compound_statement) @body
			) @definition`,
	},
	{
		Kind: KindFunction,
		Pattern: `
			(declaration
				type: (_)? @returnType
				declarator: (function_declarator
					declarator: (_) @name
					parameters: (parameter_list
						((parameter_declaration) @parameters
							("," (parameter_declaration) @parameters)*)?))
			) @declaration`,
	},
	{
		Kind: KindFunction,
		Pattern: `
			(field_declaration
				type: (_)? @returnType
				declarator: (function_declarator
					declarator: (field_identifier) @name
					parameters: (parameter_list
						((parameter_declaration) @parameters
							("," (parameter_declaration) @parameters)*)?))
			) @declaration`,
	},
	{
		Kind: KindClass,
		Pattern: `
			(class_specifier
				name: (type_identifier) @name
				body: (field_declaration_list) @body
			) @definition`,
	},
	{
		Kind: KindClass,
		Pattern: `
			(struct_specifier
				name: (type_identifier) @name
				body: (field_declaration_list) @body
			) @definition`,
	},
	{
		Kind: KindMember,
		Pattern: `
			(field_declaration
				declarator: (field_identifier) @name
			) @declaration`,
	},
	{
		Kind: KindVariable,
		Pattern: `
			(translation_unit
				(declaration
					declarator: (identifier) @name
				) @definition)`,
	},
	{
		Kind: KindVariable,
		Pattern: `
			(translation_unit
				(declaration
					declarator: (init_declarator
						declarator: (identifier) @name)
				) @definition)`,
	},
	{
		Kind: KindInclude,
		Pattern: `
			(preproc_include
				path: (_) @name
			) @definition`,
	},
}

var cBattery = []SymbolQuery{
	{
		Kind: KindFunction,
		Pattern: `
			(function_definition
				type: (_)? @returnType
				declarator: (function_declarator
					declarator: (_) @name
					parameters: (parameter_list
						((parameter_declaration) @parameters
							("," (parameter_declaration) @parameters)*)?))
				body: (compound_statement) @body
			) @definition`,
	},
	{
		Kind: KindFunction,
		Pattern: `
			(declaration
				type: (_)? @returnType
				declarator: (function_declarator
					declarator: (_) @name
					parameters: (parameter_list
						((parameter_declaration) @parameters
							("," (parameter_declaration) @parameters)*)?))
			) @declaration`,
	},
	{
		Kind: KindClass,
		Pattern: `
			(struct_specifier
				name: (type_identifier) @name
				body: (field_declaration_list) @body
			) @definition`,
	},
	{
		Kind: KindMember,
		Pattern: `
			(field_declaration
				declarator: (field_identifier) @name
			) @declaration`,
	},
	{
		Kind: KindVariable,
		Pattern: `
			(translation_unit
				(declaration
					declarator: (identifier) @name
				) @definition)`,
	},
	{
		Kind: KindInclude,
		Pattern: `
			(preproc_include
				path: (_) @name
			) @definition`,
	},
}
