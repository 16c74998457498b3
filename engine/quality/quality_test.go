package quality

import (
	"sync"
	"testing"
)

func TestNewSettings(t *testing.T) {
	tests := []struct {
		name string
		opts []SettingsBuilderOption
		want float32
	}{
		{"default", nil, DefaultLODBias},
		{"explicit", []SettingsBuilderOption{WithLODBias(2)}, 2},
		{"negative clamps", []SettingsBuilderOption{WithLODBias(-1)}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewSettings(tt.opts...).LODBias(); got != tt.want {
				t.Errorf("LODBias() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetLODBias(t *testing.T) {
	s := NewSettings()
	s.SetLODBias(0.75)
	if got := s.LODBias(); got != 0.75 {
		t.Errorf("LODBias() = %v, want 0.75", got)
	}
	s.SetLODBias(-3)
	if got := s.LODBias(); got != 0 {
		t.Errorf("LODBias() after negative set = %v, want 0", got)
	}
}

func TestDefaultIsShared(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() should return the same store")
	}
}

func TestSettingsConcurrentAccess(t *testing.T) {
	s := NewSettings()
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.SetLODBias(float32(i))
		}()
		go func() {
			defer wg.Done()
			_ = s.LODBias()
		}()
	}
	wg.Wait()
}
