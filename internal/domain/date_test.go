package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateMarshalJSON(t *testing.T) {
	d := NewDate(2010, time.January, 1)

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2010-01-01"` {
		t.Errorf("got %s, want %q", b, "2010-01-01")
	}
}

func TestDateUnmarshalJSON(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2020-05-23"`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !d.Equal(NewDate(2020, time.May, 23).Time) {
		t.Errorf("got %v", d)
	}
}

func TestDateUnmarshalJSONRejectsGarbage(t *testing.T) {
	for _, input := range []string{`"23.05.2020"`, `"2020-05-23T10:00:00Z"`, `42`, `""`} {
		var d Date
		if err := json.Unmarshal([]byte(input), &d); err == nil {
			t.Errorf("expected error for %s", input)
		}
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2015, time.March, 9, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("scan time: %v", err)
	}
	if d.Format("2006-01-02") != "2015-03-09" {
		t.Errorf("got %v", d)
	}

	if err := d.Scan(3.14); err == nil {
		t.Error("expected error for float input")
	}
}
