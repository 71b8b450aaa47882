package record

import (
	"reflect"
	"testing"
)

func TestBool01(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want bool
	}{
		{"zero int", 0, false},
		{"one int", 1, true},
		{"two int", 2, true},
		{"negative int", -1, true},
		{"zero float", float64(0), false},
		{"one float", float64(1), true},
		{"bool true", true, true},
		{"bool false", false, false},
		{"string one", "1", true},
		{"string zero", "0", false},
		{"string true", "true", true},
		{"empty string", "", false},
		{"nil", nil, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Bool01(c.in); got != c.want {
				t.Fatalf("Bool01(%v): got %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestStringList(t *testing.T) {
	cases := []struct {
		name    string
		in      any
		want    []string
		wantErr bool
	}{
		{"nil", nil, []string{}, false},
		{"native slice", []string{"Go", "SQL"}, []string{"Go", "SQL"}, false},
		{"any slice", []any{"Go", "SQL"}, []string{"Go", "SQL"}, false},
		{"json text", `["Go","SQL"]`, []string{"Go", "SQL"}, false},
		{"json null text", "null", []string{}, false},
		{"empty text", "  ", []string{}, false},
		{"malformed text", `["Go",`, nil, true},
		{"non-string element", []any{"Go", 7}, nil, true},
		{"unsupported type", 42, nil, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := StringList(c.in)
			if c.wantErr {
				if err == nil {
					t.Fatalf("StringList(%v): expected error, got %v", c.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("StringList(%v): %v", c.in, err)
			}
			if !reflect.DeepEqual(got, c.want) {
				t.Fatalf("StringList(%v): got %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestStringListCopiesInput(t *testing.T) {
	in := []string{"Go"}
	got, err := StringList(in)
	if err != nil {
		t.Fatal(err)
	}
	got[0] = "mutated"
	if in[0] != "Go" {
		t.Fatal("StringList must not alias its input slice")
	}
}

func TestEncodeListRoundTrip(t *testing.T) {
	for _, in := range [][]string{{}, nil, {"Go"}, {"Go", "SQL", ""}} {
		enc := EncodeList(in)
		got, err := StringList(enc)
		if err != nil {
			t.Fatalf("decode %q: %v", enc, err)
		}
		want := in
		if want == nil {
			want = []string{}
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("round trip %v: got %v", in, got)
		}
	}
}

func TestSplitCSV(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"   ", []string{}},
		{"Go", []string{"Go"}},
		{" Go , SQL ", []string{"Go", "SQL"}},
		{"Go,,SQL", []string{"Go", "", "SQL"}},
		{"Go,Go", []string{"Go", "Go"}}, // no de-duplication
	}
	for _, c := range cases {
		if got := SplitCSV(c.in); !reflect.DeepEqual(got, c.want) {
			t.Fatalf("SplitCSV(%q): got %v, want %v", c.in, got, c.want)
		}
	}
}
