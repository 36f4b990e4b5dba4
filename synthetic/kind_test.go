package synthetic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{LoadLocal, "load"},
		{StoreLocal, "store"},
		{NullCheck, "ifnull"},
		{NonNullCheck, "ifnonnull"},
		{RefEqual, "if_acmpeq"},
		{Jump, "goto"},
		{InvokeVirtual, "invokevirtual"},
		{InvokeInterface, "invokeinterface"},
		{Throw, "athrow"},
		{KindNone, ""},
		{Kind(255), ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.kind.String())
	}
}
