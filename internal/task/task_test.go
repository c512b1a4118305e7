package task

import "testing"

func TestPriority_String(t *testing.T) {
	tests := []struct {
		p    Priority
		want string
	}{
		{PriorityHigh, "High"},
		{PriorityMedium, "Medium"},
		{PriorityLow, "Low"},
		{Priority(0), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.p.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPriority_Next(t *testing.T) {
	tests := []struct {
		from Priority
		want Priority
	}{
		{PriorityHigh, PriorityMedium},
		{PriorityMedium, PriorityLow},
		{PriorityLow, PriorityHigh},
		{Priority(0), PriorityHigh},
	}
	for _, tt := range tests {
		if got := tt.from.Next(); got != tt.want {
			t.Errorf("%v.Next() = %v, want %v", tt.from, got, tt.want)
		}
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in      string
		want    Priority
		wantErr bool
	}{
		{"High", PriorityHigh, false},
		{"medium", PriorityMedium, false},
		{" LOW ", PriorityLow, false},
		{"urgent", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePriority(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePriority(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePriority(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCategory(t *testing.T) {
	if CategoryPersonal.Next() != CategoryWork || CategoryWork.Next() != CategoryPersonal {
		t.Error("Category.Next() should alternate between Personal and Work")
	}
	if Category(0).Valid() {
		t.Error("zero Category should not be valid")
	}

	got, err := ParseCategory("work")
	if err != nil || got != CategoryWork {
		t.Errorf("ParseCategory(work) = %v, %v", got, err)
	}
	if _, err := ParseCategory("errands"); err == nil {
		t.Error("ParseCategory(errands) should fail")
	}
}

func TestFilter_Matches(t *testing.T) {
	tests := []struct {
		filter   Filter
		category Category
		want     bool
	}{
		{FilterAll, CategoryPersonal, true},
		{FilterAll, CategoryWork, true},
		{FilterPersonal, CategoryPersonal, true},
		{FilterPersonal, CategoryWork, false},
		{FilterWork, CategoryWork, true},
		{FilterWork, CategoryPersonal, false},
	}
	for _, tt := range tests {
		t.Run(tt.filter.String()+"/"+tt.category.String(), func(t *testing.T) {
			if got := tt.filter.Matches(tt.category); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_NextAndParse(t *testing.T) {
	if FilterAll.Next() != FilterPersonal || FilterPersonal.Next() != FilterWork || FilterWork.Next() != FilterAll {
		t.Error("Filter.Next() should cycle All -> Personal -> Work -> All")
	}

	for _, f := range Filters() {
		got, err := ParseFilter(f.String())
		if err != nil || got != f {
			t.Errorf("ParseFilter(%q) = %v, %v", f.String(), got, err)
		}
	}
	if _, err := ParseFilter("done"); err == nil {
		t.Error("ParseFilter(done) should fail")
	}
}
