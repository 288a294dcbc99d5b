package todos

import "testing"

func TestProgress(t *testing.T) {
	cases := []struct {
		name      string
		completed int64
		total     int64
		want      float64
	}{
		{"empty list", 0, 0, 0},
		{"negative total", 1, -1, 0},
		{"none done", 0, 4, 0},
		{"all done", 3, 3, 100},
		{"half", 1, 2, 50},
		{"third", 1, 3, 33.33},
		{"two thirds", 2, 3, 66.67},
		{"seventh", 1, 7, 14.29},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Progress(tc.completed, tc.total); got != tc.want {
				t.Fatalf("Progress(%d, %d) = %v, want %v", tc.completed, tc.total, got, tc.want)
			}
		})
	}
}

func TestWithProgress(t *testing.T) {
	view := WithProgress(TodoList{ID: 1, Name: "A", CompletedCount: 1, TotalCount: 4})
	if view.Progress != 25 {
		t.Fatalf("expected 25, got %v", view.Progress)
	}
	if view.Name != "A" || view.DeletedAtTime() != nil {
		t.Fatalf("unexpected view: %+v", view)
	}
}
