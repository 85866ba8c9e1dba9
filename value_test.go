package tableview

import (
	"math"
	"testing"
)

func TestValue(t *testing.T) {
	tests := []struct {
		name       string
		value      Value
		wantKind   Kind
		wantString string
	}{
		{name: "zero", value: Value{}, wantKind: KindMissing, wantString: ""},
		{name: "Missing", value: Missing(), wantKind: KindMissing, wantString: ""},
		{name: "NaN", value: Number(math.NaN()), wantKind: KindMissing, wantString: ""},
		{name: "Number", value: Number(1.25), wantKind: KindNumber, wantString: "1.25"},
		{name: "Inf", value: Number(math.Inf(1)), wantKind: KindNumber, wantString: "inf"},
		{name: "negative Inf", value: Number(math.Inf(-1)), wantKind: KindNumber, wantString: "-inf"},
		{name: "Text", value: Text("x"), wantKind: KindText, wantString: "x"},
		{name: "empty Text", value: Text(""), wantKind: KindText, wantString: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.Kind(); got != tt.wantKind {
				t.Errorf("Value.Kind() = %s, want %s", got, tt.wantKind)
			}
			if got := tt.value.String(); got != tt.wantString {
				t.Errorf("Value.String() = %q, want %q", got, tt.wantString)
			}
			if got := tt.value.IsMissing(); got != (tt.wantKind == KindMissing) {
				t.Errorf("Value.IsMissing() = %t", got)
			}
			_, isNum := tt.value.Float()
			if isNum != (tt.wantKind == KindNumber) {
				t.Errorf("Value.Float() ok = %t", isNum)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	if got := Kind(7).String(); got != "Kind(7)" {
		t.Errorf("Kind.String() = %q", got)
	}
}
