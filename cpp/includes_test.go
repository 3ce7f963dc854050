package cpp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInclude(t *testing.T) {
	assert.NoError(t, validateInclude(`"foo.h"`))
	assert.NoError(t, validateInclude(`<vector>`))

	assert.ErrorIs(t, validateInclude(`foo.h`), ErrMalformedInclude)
	assert.ErrorIs(t, validateInclude(`"foo.h`), ErrMalformedInclude)
	assert.ErrorIs(t, validateInclude(`<foo.h`), ErrMalformedInclude)
	assert.ErrorIs(t, validateInclude(``), ErrMalformedInclude)
}

func TestInsertIncludeIntoEmptyFile(t *testing.T) {
	d := newTestDoc(t, "int main() { return 0; }\n")

	ok, err := InsertInclude(d, `"foo.h"`, false)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "#include \"foo.h\"\nint main() { return 0; }\n", d.Text())
}

func TestInsertIncludeAfterLast(t *testing.T) {
	d := newTestDoc(t, "#include \"foo.h\"\n\nint main() {}\n")

	ok, err := InsertInclude(d, `<bar.h>`, false)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "#include \"foo.h\"\n#include <bar.h>\n\nint main() {}\n", d.Text())
}

func TestInsertIncludeNewGroup(t *testing.T) {
	d := newTestDoc(t, "#include \"foo.h\"\n\nint main() {}\n")

	ok, err := InsertInclude(d, `<bar.h>`, true)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "#include \"foo.h\"\n\n#include <bar.h>\n\nint main() {}\n", d.Text())
}

func TestInsertIncludeAlreadyPresent(t *testing.T) {
	original := "#include <vector>\n\nint main() {}\n"
	d := newTestDoc(t, original)

	ok, err := InsertInclude(d, `<vector>`, false)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, original, d.Text())
}

func TestInsertIncludeMalformed(t *testing.T) {
	d := newTestDoc(t, "int main() {}\n")

	_, err := InsertInclude(d, `vector`, false)
	assert.ErrorIs(t, err, ErrMalformedInclude)
}

func TestRemoveInclude(t *testing.T) {
	d := newTestDoc(t, "#include \"foo.h\"\n#include <vector>\n\nint f();\n")

	ok, err := RemoveInclude(d, `<vector>`)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "#include \"foo.h\"\n\nint f();\n", d.Text())
}

func TestRemoveIncludeFirstLine(t *testing.T) {
	d := newTestDoc(t, "#include \"foo.h\"\n#include <vector>\n")

	ok, err := RemoveInclude(d, `"foo.h"`)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "#include <vector>\n", d.Text())
}

func TestRemoveIncludeAbsent(t *testing.T) {
	original := "#include \"foo.h\"\n"
	d := newTestDoc(t, original)

	ok, err := RemoveInclude(d, `<vector>`)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, original, d.Text())
}

func TestRemoveIncludeMalformed(t *testing.T) {
	d := newTestDoc(t, "#include \"foo.h\"\n")

	_, err := RemoveInclude(d, `foo.h`)
	assert.ErrorIs(t, err, ErrMalformedInclude)
}
