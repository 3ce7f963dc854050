// Package cpp implements the C++-specific transformations on top of the
// generic document core: structural queries for classes, methods and
// calls, method deletion and insertion, include management and MFC
// message-map extraction.
//
// The document hierarchy of a classic editor is deliberately flattened
// here: everything is a free function over a *document.Document.
package cpp

import (
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/phyBrackets/knut/document"
	"github.com/phyBrackets/knut/treesitter"
)

var log = commonlog.GetLogger("knut.cpp")

// QueryClassDefinition returns the definition of the class or struct with
// the given name, or nil if the document has none. The match carries the
// captures `name`, `body` and `class`.
func QueryClassDefinition(doc *document.Document, className string) (*treesitter.Match, error) {
	pattern := fmt.Sprintf(`
		([
			(class_specifier
				name: (type_identifier) @name
				body: (field_declaration_list) @body)
			(struct_specifier
				name: (type_identifier) @name
				body: (field_declaration_list) @body)
		] @class
		(#eq? @name %q))`, className)
	matches, err := doc.Query(pattern)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

// QueryMethodDefinition returns the method definitions matching the given
// name and scope; scope may be a class name, a namespace, or empty. Every
// match carries `definition`, `name`, `parameter-list`, `parameters`
// (repeated, one per parameter), `body` and optionally `scope` and
// `returnType`.
func QueryMethodDefinition(doc *document.Document, scope, functionName string) ([]*treesitter.Match, error) {
	identifier := fmt.Sprintf(`(identifier) @name (#eq? @name %q)`, functionName)
	if scope != "" {
		identifier = fmt.Sprintf(`
			(qualified_identifier
				scope: (_) @scope (#eq? @scope %q)
				%s)`, scope, identifier)
	}
	pattern := fmt.Sprintf(`
		(function_definition
			type: (_)? @returnType
			declarator: (function_declarator
				declarator: %s
				parameters: (parameter_list
					((parameter_declaration) @parameters
						("," (parameter_declaration) @parameters)*)?
				) @parameter-list)
			body: (compound_statement) @body
		) @definition`, identifier)
	return doc.Query(pattern)
}

// QueryMember returns the declaration of a member inside the given class,
// using a range-bounded query over the class body. The match carries
// `member` and `name`. Returns nil if the class or the member is absent.
func QueryMember(doc *document.Document, className, memberName string) (*treesitter.Match, error) {
	class, err := QueryClassDefinition(doc, className)
	if err != nil {
		return nil, err
	}
	if class == nil {
		log.Infof("QueryMember: no class %q in %s", className, doc.Path())
		return nil, nil
	}
	body := class.Get("body")
	pattern := fmt.Sprintf(`
		(field_declaration
			declarator: (field_identifier) @name (#eq? @name %q)
		) @member`, memberName)
	matches, err := doc.QueryInRange(pattern, document.TextRange{
		Start: body.StartByte(),
		End:   body.EndByte(),
	})
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

// QueryFunctionCall returns every call of the given function. Matches
// carry `call`, `argument-list` and repeated `arguments` captures.
func QueryFunctionCall(doc *document.Document, functionName string) ([]*treesitter.Match, error) {
	pattern := fmt.Sprintf(`
		((call_expression
			function: [
				(identifier) @name
				(field_expression
					field: (field_identifier) @name)
			]
			arguments: (argument_list
				((_) @arguments
					("," (_) @arguments)*)?
			) @argument-list
		) @call
		(#eq? @name %q))`, functionName)
	return doc.Query(pattern)
}
