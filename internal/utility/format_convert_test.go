package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes uint64
		want  string
	}{
		{name: "dưới 1KB giữ nguyên bytes", bytes: 512, want: "512 B"},
		{name: "0 bytes", bytes: 0, want: "0 B"},
		{name: "KB", bytes: 2048, want: "2.0 KB"},
		{name: "MB lẻ", bytes: 1536 * 1024, want: "1.5 MB"},
		{name: "GB", bytes: 3 * 1024 * 1024 * 1024, want: "3.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBytes(tt.bytes))
		})
	}
}

func TestString2ObjectID(t *testing.T) {
	t.Run("hex hợp lệ", func(t *testing.T) {
		id := primitive.NewObjectID()
		assert.Equal(t, id, String2ObjectID(id.Hex()))
	})

	t.Run("chuỗi không hợp lệ trả về NilObjectID", func(t *testing.T) {
		assert.Equal(t, primitive.NilObjectID, String2ObjectID("không phải hex"))
	})
}

func TestStringArray2ObjectIDArray(t *testing.T) {
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()

	got := StringArray2ObjectIDArray([]string{first.Hex(), second.Hex()})

	assert.Equal(t, []primitive.ObjectID{first, second}, got)
}
