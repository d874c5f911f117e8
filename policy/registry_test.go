package policy

import (
	"errors"
	"slices"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"reverser", "*policy.Reverser"},
		{"Reverser", "*policy.Reverser"},
		{" KAMIKAZE ", "*policy.Kamikaze"},
		{"runaway", "*policy.RunAway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bot, err := New(tt.name, DefaultParams(), nil)
			if err != nil {
				t.Fatalf("New(%q) error = %v", tt.name, err)
			}
			switch bot.(type) {
			case *Reverser:
				if tt.want != "*policy.Reverser" {
					t.Errorf("New(%q) = %T, want %s", tt.name, bot, tt.want)
				}
			case *Kamikaze:
				if tt.want != "*policy.Kamikaze" {
					t.Errorf("New(%q) = %T, want %s", tt.name, bot, tt.want)
				}
			case *RunAway:
				if tt.want != "*policy.RunAway" {
					t.Errorf("New(%q) = %T, want %s", tt.name, bot, tt.want)
				}
			default:
				t.Errorf("New(%q) = %T", tt.name, bot)
			}
		})
	}
}

func TestNew_Unknown(t *testing.T) {
	_, err := New("camper", DefaultParams(), nil)
	if !errors.Is(err, ErrUnknownPolicy) {
		t.Errorf("err = %v, want ErrUnknownPolicy", err)
	}
}

func TestNew_ParamsPassed(t *testing.T) {
	p := DefaultParams()
	p.FireRange = 123

	bot, err := New("reverser", p, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := bot.(*Reverser).params.FireRange; got != 123 {
		t.Errorf("FireRange = %f, want 123", got)
	}
}

func TestNames(t *testing.T) {
	want := []string{"kamikaze", "reverser", "runaway"}
	if got := Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}
