package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortResultString(t *testing.T) {
	tests := []struct {
		name   string
		result SortResult
		want   string
	}{
		{
			name:   "move",
			result: SortResult{Key: "W", Source: "/in/a.jpg", Destination: "/out/keep/a.jpg", Action: MoveAction},
			want:   "[W] Moved a.jpg → /out/keep",
		},
		{
			name:   "copy keeps renamed destination directory",
			result: SortResult{Key: "Z", Source: "/in/b.gif", Destination: "/out/b_(1).gif", Action: CopyAction},
			want:   "[Z] Copied b.gif → /out",
		},
		{
			name:   "delete",
			result: SortResult{Source: "/in/c.png", Action: DeleteAction},
			want:   "Deleted c.png",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.String())
		})
	}
}
