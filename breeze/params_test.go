package breeze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamsEncode(t *testing.T) {
	tests := []struct {
		name  string
		build func(*params)
		want  string
	}{
		{
			name:  "empty",
			build: func(p *params) {},
			want:  "",
		},
		{
			name: "insertion order preserved",
			build: func(p *params) {
				p.addInt("limit", 10)
				p.addInt("offset", 5)
				p.addBool("details", true)
			},
			want: "limit=10&offset=5&details=1",
		},
		{
			name: "zero values omitted",
			build: func(p *params) {
				p.addInt("limit", 0)
				p.addString("start", "")
				p.addBool("details", false)
				p.add("instance_id", "42")
			},
			want: "instance_id=42",
		},
		{
			name: "values escaped",
			build: func(p *params) {
				p.addString("filter_json", `{"name":"John Doe"}`)
			},
			want: "filter_json=%7B%22name%22%3A%22John+Doe%22%7D",
		},
		{
			name: "lists dash joined",
			build: func(p *params) {
				p.addList("fund_ids", []string{"1", "2", "3"})
				p.addList("batches", nil)
			},
			want: "fund_ids=1-2-3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p params
			tt.build(&p)
			assert.Equal(t, tt.want, p.encode())
		})
	}
}
