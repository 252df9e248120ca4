package testutil

import (
	"strings"
	"testing"
)

func TestPerftCases_WellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, tc := range PerftCases {
		t.Run(tc.Name, func(t *testing.T) {
			AssertFalse(t, seen[tc.Name], "duplicate case name %q", tc.Name)
			seen[tc.Name] = true

			AssertEqual(t, len(strings.Fields(tc.FEN)), 6, "FEN fields")
			AssertEqual(t, strings.Count(tc.FEN, "/"), 7, "FEN ranks")
			AssertTrue(t, len(tc.Nodes) > 0, "node counts")
			for i := 1; i < len(tc.Nodes); i++ {
				AssertTrue(t, tc.Nodes[i] > tc.Nodes[i-1], "nodes grow with depth")
			}
		})
	}
}

func TestFoolsMate_WellFormed(t *testing.T) {
	for _, m := range FoolsMate {
		AssertEqual(t, len(m), 4, "move %q", m)
	}
}
