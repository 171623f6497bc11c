package namer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-txflow/namer"
	"github.com/tarantool/go-txflow/txn"
)

func TestDefaultNamer_Name(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		prefix   string
		handle   txn.Handle
		expected string
	}{
		{"plain", "/txflow", "tx-1", "/txflow/pending/tx-1"},
		{"trailing slash", "/txflow/", "tx-1", "/txflow/pending/tx-1"},
		{"empty prefix", "", "abc", "/pending/abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dn := namer.NewDefaultNamer(tt.prefix)

			result, err := dn.Name(tt.handle)
			require.NoError(t, err)
			require.Equal(t, tt.expected, result)

			handle, err := dn.Parse(result)
			require.NoError(t, err)
			assert.Equal(t, tt.handle, handle)
		})
	}
}

func TestDefaultNamer_Name_Invalid(t *testing.T) {
	t.Parallel()

	dn := namer.NewDefaultNamer("/txflow")

	for _, handle := range []txn.Handle{"", "a/b"} {
		_, err := dn.Name(handle)

		var nameErr namer.InvalidNameError
		require.ErrorAs(t, err, &nameErr)
		assert.Equal(t, handle.String(), nameErr.Name)
	}
}

func TestDefaultNamer_Parse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		key     string
		problem string
	}{
		{"foreign prefix", "/other/pending/tx-1", "prefix mismatch"},
		{"no handle", "/txflow/pending/", "handle is empty"},
		{"nested", "/txflow/pending/tx-1/extra", "unexpected nesting"},
	}

	dn := namer.NewDefaultNamer("/txflow")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := dn.Parse(tt.key)

			var keyErr namer.InvalidKeyError
			require.ErrorAs(t, err, &keyErr)
			assert.Equal(t, tt.key, keyErr.Key)
			assert.Equal(t, tt.problem, keyErr.Problem)
		})
	}
}
