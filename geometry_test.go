package icongen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tenntenn/golden"
)

func TestLayoutFor(t *testing.T) {
	tests := []struct {
		size int
	}{
		{16},
		{48},
		{128},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.size), func(t *testing.T) {
			l := layoutFor(tt.size)
			got, err := json.MarshalIndent(l, "", "  ")
			if err != nil {
				t.Fatal(err)
			}
			name := filepath.Join("testdata", fmt.Sprintf("layout%d", tt.size))
			if os.Getenv("UPDATE_GOLDEN") != "" {
				golden.Update(t, "", name, got)
				return
			}
			if diff := golden.Diff(t, "", name, got); diff != "" {
				t.Error(diff)
			}
		})
	}
}

// At 16px every dimension that would truncate to zero is clamped so the icon
// stays legible.
func TestLayoutMinimums(t *testing.T) {
	l := layoutFor(16)
	if l.EyeRadius < 2 {
		t.Errorf("EyeRadius = %d, want >= 2", l.EyeRadius)
	}
	if l.KeyRadius < 3 {
		t.Errorf("KeyRadius = %d, want >= 3", l.KeyRadius)
	}
	if l.KeyWidth < 2 {
		t.Errorf("KeyWidth = %d, want >= 2", l.KeyWidth)
	}
	if l.ToothWidth < 2 {
		t.Errorf("ToothWidth = %d, want >= 2", l.ToothWidth)
	}
	if l.ToothHeight < 3 {
		t.Errorf("ToothHeight = %d, want >= 3", l.ToothHeight)
	}
}

// At the full 128px base size no scaling happens, so the layout must carry
// the normalized coordinates unchanged.
func TestLayoutAtBaseSize(t *testing.T) {
	l := layoutFor(128)
	want := layout{
		Size:         128,
		CornerRadius: 24,
		Head:         headPoints,
		Body:         bodyPoints,
		EyeX:         82,
		EyeY:         38,
		EyeRadius:    4,
		KeyX:         25,
		KeyY:         95,
		KeyRadius:    8,
		KeyWidth:     3,
		ShaftStart:   33,
		ShaftEnd:     65,
		ToothWidth:   3,
		ToothHeight:  6,
	}
	if diff := cmp.Diff(want, l); diff != "" {
		t.Error(diff)
	}
}
