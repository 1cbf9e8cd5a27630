package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hikulang/hiku/types"
)

func TestKindDispatch(t *testing.T) {
	cases := []struct {
		descriptor types.Descriptor
		kind       types.Kind
	}{
		{types.String, types.KindScalar},
		{types.NewRecord(map[string]types.Descriptor{"gone": types.Integer}, "gone"), types.KindRecord},
		{types.Sequence{Item: types.Integer}, types.KindSequence},
		{types.Optional{Item: types.Integer}, types.KindOptional},
		{types.TypeRef{Node: "tergate"}, types.KindTypeRef},
	}
	for _, c := range cases {
		assert.Equal(t, c.kind, c.descriptor.Kind())
	}
}

func TestRecordPreservesFieldOrder(t *testing.T) {
	record := types.NewRecord(map[string]types.Descriptor{
		"gone":   types.Integer,
		"sodden": types.Integer,
	}, "gone", "sodden")
	assert.Equal(t, []string{"gone", "sodden"}, record.FieldOrder)
}
