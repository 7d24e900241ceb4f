package icongen

import (
	"fmt"
	"regexp"

	"github.com/k1LoW/errors"
)

// DefaultTheme is the BlueHawk palette.
var DefaultTheme = Theme{
	Background: "#1e3a5f",
	Silhouette: "#f59e0b",
	Eye:        "#0d1b2a",
	Key:        "#22c55e",
}

// Theme is the palette used by the procedural drawing path.
type Theme struct {
	Background string `yaml:"background" json:"background"`
	Silhouette string `yaml:"silhouette" json:"silhouette"`
	Eye        string `yaml:"eye" json:"eye"`
	Key        string `yaml:"key" json:"key"`
}

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func (t Theme) validate() (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	for _, c := range []struct {
		name  string
		value string
	}{
		{"background", t.Background},
		{"silhouette", t.Silhouette},
		{"eye", t.Eye},
		{"key", t.Key},
	} {
		if !hexColorRe.MatchString(c.value) {
			return fmt.Errorf("invalid %s color: %q", c.name, c.value)
		}
	}
	return nil
}
