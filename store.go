package ember

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
)

// presetsObject is the gdata object presets are stored under; the
// property key is the preset name.
const presetsObject = "presets"

// PresetStore persists presets in the platform's application data
// directory, so tuned effects survive restarts on every platform
// Ebitengine targets.
type PresetStore struct {
	m *gdata.Manager
}

// OpenPresetStore opens (creating if needed) the preset store for the
// given application name.
func OpenPresetStore(appName string) (*PresetStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open preset store: %w", err)
	}
	return &PresetStore{m: m}, nil
}

// Save writes the preset under its Name. An unnamed preset is rejected.
func (s *PresetStore) Save(p *Preset) error {
	if p.Name == "" {
		return fmt.Errorf("save preset: preset has no name")
	}
	return s.SaveAs(p.Name, p)
}

// SaveAs writes the preset under an explicit key, leaving the preset's
// own Name intact inside the stored document. Useful for slots like
// "last" that point at a named preset.
func (s *PresetStore) SaveAs(key string, p *Preset) error {
	data, err := p.Marshal()
	if err != nil {
		return err
	}
	if err := s.m.SaveObjectProp(presetsObject, key, data); err != nil {
		return fmt.Errorf("save preset %q: %w", key, err)
	}
	return nil
}

// Exists reports whether a preset with the given name is stored.
func (s *PresetStore) Exists(name string) bool {
	return s.m.ObjectPropExists(presetsObject, name)
}

// Load reads the named preset.
func (s *PresetStore) Load(name string) (*Preset, error) {
	if !s.m.ObjectPropExists(presetsObject, name) {
		return nil, fmt.Errorf("load preset %q: not found", name)
	}
	data, err := s.m.LoadObjectProp(presetsObject, name)
	if err != nil {
		return nil, fmt.Errorf("load preset %q: %w", name, err)
	}
	p, err := ParsePreset(data)
	if err != nil {
		return nil, fmt.Errorf("load preset %q: %w", name, err)
	}
	if p.Name == "" {
		p.Name = name
	}
	return p, nil
}
