package sheet

import "testing"

func TestInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{name: "nil", in: nil, want: 0},
		{name: "blank", in: "", want: 0},
		{name: "whitespace", in: "   ", want: 0},
		{name: "plain", in: "42", want: 42},
		{name: "padded", in: " 7 ", want: 7},
		{name: "negative", in: "-3", want: -3},
		{name: "explicit plus", in: "+5", want: 5},
		{name: "decimal truncates", in: "3.7", want: 3},
		{name: "trailing text", in: "12abc", want: 12},
		{name: "non numeric", in: "abc", want: 0},
		{name: "sign only", in: "-", want: 0},
		{name: "int", in: 9, want: 9},
		{name: "int64", in: int64(11), want: 11},
		{name: "float", in: 120.0, want: 120},
		{name: "bool", in: true, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Int(tt.in); got != tt.want {
				t.Fatalf("Int(%#v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestText(t *testing.T) {
	if got := Text("  Anna "); got != "Anna" {
		t.Fatalf("unexpected text: %q", got)
	}
	if got := Text(nil); got != "" {
		t.Fatalf("expected empty text for nil, got %q", got)
	}
	if got := Text(3); got != "3" {
		t.Fatalf("unexpected text for int: %q", got)
	}
	if !IsBlank(" ") || IsBlank("0") {
		t.Fatalf("IsBlank should only match empty cells")
	}
}

func TestFixtureRowHomePlayers(t *testing.T) {
	row := FixtureRow{Player1: "", Player2: " Ben "}
	got := row.HomePlayers()
	if len(got) != 1 || got[0] != "Ben" {
		t.Fatalf("unexpected home players: %v", got)
	}

	starters := StarterRow{Starter1: "Anna", Starter2: "Ben"}.Starters()
	if len(starters) != 2 || starters[0] != "Anna" || starters[1] != "Ben" {
		t.Fatalf("unexpected starters: %v", starters)
	}
}
