package sheet

import "testing"

func TestDecodeRows_FixtureColumns(t *testing.T) {
	records := []map[string]string{
		{
			"Spieltag":   "1",
			"Datum":      "12.09.2025",
			"Gegnerteam": "Bullseye Bande",
			"Spiel":      "1",
			"Typ":        "Doppel",
			"Spieler 1":  "Anna",
			"Spieler 2":  "Ben",
			"Gegner":     "C & D",
			"Ergebnis +": "3",
			"Ergebnis -": "1",
			"Sets +":     "3",
			"Sets -":     "1",
			"Highscore":  "180",
			"Kommentar":  "ignored",
		},
	}

	rows, err := DecodeRows[FixtureRow](records)
	if err != nil {
		t.Fatalf("decode rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	if row.Round != "1" || row.OpponentTeam != "Bullseye Bande" || row.Type != "Doppel" {
		t.Fatalf("unexpected header fields: %+v", row)
	}
	if row.Player1 != "Anna" || row.Player2 != "Ben" || row.Opponents != "C & D" {
		t.Fatalf("unexpected player fields: %+v", row)
	}
	if row.ScoreHome != "3" || row.SetsAgainst != "1" || row.Highscore != "180" {
		t.Fatalf("unexpected numeric fields: %+v", row)
	}
	if row.Lowscore != "" || row.Win != "" {
		t.Fatalf("missing columns should stay empty: %+v", row)
	}
}

func TestDecodeRows_Empty(t *testing.T) {
	rows, err := DecodeRows[TeamRow](nil)
	if err != nil {
		t.Fatalf("decode rows: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", rows)
	}
}
