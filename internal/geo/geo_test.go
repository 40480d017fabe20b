package geo

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func testLookup() Lookup {
	return Lookup{
		"Antioquia":       {"Rionegro", "Medellín", "Envigado"},
		"Cundinamarca":    {"Zipaquirá", "Bogotá D.C.", "Chía"},
		"Valle del Cauca": {"Palmira", "Cali"},
	}
}

func TestPopulateDepartments(t *testing.T) {
	sel := PopulateDepartments(testLookup(), "")

	if sel.Disabled {
		t.Fatal("department select should be enabled")
	}
	if sel.Options[0].Value != "" || sel.Options[0].Label != departmentPlaceholder {
		t.Fatalf("first option = %+v, want placeholder", sel.Options[0])
	}
	want := []string{"Antioquia", "Cundinamarca", "Valle del Cauca"}
	if got := sel.Values(); !reflect.DeepEqual(got, want) {
		t.Fatalf("departments = %v, want %v", got, want)
	}
}

func TestPopulateCitiesEveryDepartment(t *testing.T) {
	l := testLookup()
	for dept := range l {
		t.Run(dept, func(t *testing.T) {
			sel := PopulateCities(l, dept)
			if sel.Disabled {
				t.Fatal("city select should be enabled for a valid department")
			}
			want := l.Cities(dept)
			if got := sel.Values(); !reflect.DeepEqual(got, want) {
				t.Fatalf("cities = %v, want %v", got, want)
			}
			for i := 1; i < len(want); i++ {
				if want[i-1] > want[i] {
					t.Fatalf("cities not sorted: %v", want)
				}
			}
			for _, o := range sel.Options[1:] {
				if o.Selected {
					t.Fatalf("option %q pre-selected after department change", o.Value)
				}
			}
		})
	}
}

func TestPopulateCitiesInvalidDepartment(t *testing.T) {
	for _, dept := range []string{"", "Atlantis"} {
		sel := PopulateCities(testLookup(), dept)
		if !sel.Disabled {
			t.Fatalf("%q: city select should be disabled", dept)
		}
		if len(sel.Options) != 1 || sel.Options[0].Label != cityWaitPlaceholder {
			t.Fatalf("%q: options = %+v, want single placeholder", dept, sel.Options)
		}
	}
}

func TestPopulateCitiesSelectedDropsForeignCity(t *testing.T) {
	l := testLookup()
	sel := PopulateCitiesSelected(l, "Antioquia", "Cali")
	for _, o := range sel.Options {
		if o.Selected && o.Value != "" {
			t.Fatalf("city %q from another department kept selected", o.Value)
		}
	}
	sel = PopulateCitiesSelected(l, "Antioquia", "Envigado")
	var got string
	for _, o := range sel.Options {
		if o.Selected {
			got = o.Value
		}
	}
	if got != "Envigado" {
		t.Fatalf("selected = %q, want Envigado", got)
	}
}

func TestCitiesDoesNotMutateLookup(t *testing.T) {
	l := testLookup()
	_ = l.Cities("Antioquia")
	if l["Antioquia"][0] != "Rionegro" {
		t.Fatal("Cities sorted the lookup in place")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "divisions.yaml")
	if err := os.WriteFile(yamlPath, []byte("Antioquia:\n  - Medellín\n  - Bello\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l, err := Load(yamlPath)
	if err != nil {
		t.Fatalf("Load yaml: %v", err)
	}
	if !l.HasCity("Antioquia", "Bello") {
		t.Fatal("expected Bello in Antioquia")
	}

	jsonPath := filepath.Join(dir, "divisions.json")
	if err := os.WriteFile(jsonPath, []byte(`{"Boyacá": ["Tunja", "Duitama"]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	l, err = Load(jsonPath)
	if err != nil {
		t.Fatalf("Load json: %v", err)
	}
	if !reflect.DeepEqual(l.Cities("Boyacá"), []string{"Duitama", "Tunja"}) {
		t.Fatalf("cities = %v", l.Cities("Boyacá"))
	}
}

func TestParseRejectsBadLookups(t *testing.T) {
	cases := map[string]string{
		"empty":      "{}",
		"no cities":  "Antioquia: []\n",
		"blank name": "'  ': [Medellín]\n",
		"not a map":  "- a\n- b\n",
	}
	for name, doc := range cases {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
