package geo

const (
	departmentPlaceholder = "Select a department"
	cityPlaceholder       = "Select a city"
	cityWaitPlaceholder   = "Select a department first"
)

// Option is one <option> of a select
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Select is the rendered state of a <select> control
type Select struct {
	Options  []Option
	Disabled bool
}

// Values returns the non-placeholder option values in order
func (s Select) Values() []string {
	var out []string
	for _, o := range s.Options {
		if o.Value != "" {
			out = append(out, o.Value)
		}
	}
	return out
}

func populate(items []string, placeholder, selected string) []Option {
	opts := make([]Option, 0, len(items)+1)
	opts = append(opts, Option{Value: "", Label: placeholder, Selected: selected == ""})
	for _, item := range items {
		opts = append(opts, Option{Value: item, Label: item, Selected: item == selected})
	}
	return opts
}

// PopulateDepartments lists every department, sorted, after a placeholder.
// selected marks the current choice; pass "" for none.
func PopulateDepartments(l Lookup, selected string) Select {
	return Select{Options: populate(l.Departments(), departmentPlaceholder, selected)}
}

// PopulateCities lists the department's cities, sorted, with no city selected.
// An unknown or empty department yields a disabled select holding only a
// placeholder.
func PopulateCities(l Lookup, department string) Select {
	return PopulateCitiesSelected(l, department, "")
}

// PopulateCitiesSelected is PopulateCities keeping city selected when it
// belongs to department. Used when re-rendering a page for an existing session.
func PopulateCitiesSelected(l Lookup, department, city string) Select {
	if department == "" || !l.Has(department) {
		return Select{
			Options:  []Option{{Value: "", Label: cityWaitPlaceholder, Selected: true}},
			Disabled: true,
		}
	}
	if !l.HasCity(department, city) {
		city = ""
	}
	return Select{Options: populate(l.Cities(department), cityPlaceholder, city)}
}
