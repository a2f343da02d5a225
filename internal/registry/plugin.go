package registry

import (
	"prism/pkg/logging"
)

// PluginSpec describes a plugin at registration time.
type PluginSpec struct {
	// Version is the plugin's version string.
	Version string
	// EntryPoint names the plugin's entry point.
	EntryPoint string
}

// PluginRecord tracks a registered plugin and its enablement state.
type PluginRecord struct {
	// Name is the unique registry key.
	Name string
	// Version is the plugin's version string.
	Version string
	// EntryPoint names the plugin's entry point.
	EntryPoint string
	// Enabled is toggled by EnablePlugin/DisablePlugin.
	Enabled bool
	// Installed is toggled by InstallPlugin/UninstallPlugin.
	Installed bool
}

// RegisterPlugin registers a plugin under a unique name. New plugins start
// enabled and not installed. A duplicate name fails with a
// DuplicateRegistrationError and leaves the existing record untouched.
func (s *Service) RegisterPlugin(name string, spec PluginSpec) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.plugins[name]; exists {
		return &DuplicateRegistrationError{Kind: "plugin", Name: name}
	}

	s.plugins[name] = &PluginRecord{
		Name:       name,
		Version:    spec.Version,
		EntryPoint: spec.EntryPoint,
		Enabled:    true,
	}

	logging.Debug("Registry", "Registered plugin %s (version: %s)", name, spec.Version)
	return nil
}

// GetPlugin returns a copy of the named plugin record.
func (s *Service) GetPlugin(name string) (*PluginRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, exists := s.plugins[name]
	if !exists {
		return nil, &NotFoundError{Kind: "plugin", Name: name}
	}
	out := *record
	return &out, nil
}

// EnablePlugin marks a plugin enabled.
func (s *Service) EnablePlugin(name string) error {
	return s.setPluginFlag(name, func(r *PluginRecord) { r.Enabled = true })
}

// DisablePlugin marks a plugin disabled.
func (s *Service) DisablePlugin(name string) error {
	return s.setPluginFlag(name, func(r *PluginRecord) { r.Enabled = false })
}

// InstallPlugin marks a plugin installed.
func (s *Service) InstallPlugin(name string) error {
	return s.setPluginFlag(name, func(r *PluginRecord) { r.Installed = true })
}

// UninstallPlugin marks a plugin not installed.
func (s *Service) UninstallPlugin(name string) error {
	return s.setPluginFlag(name, func(r *PluginRecord) { r.Installed = false })
}

func (s *Service) setPluginFlag(name string, mutate func(*PluginRecord)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, exists := s.plugins[name]
	if !exists {
		return &NotFoundError{Kind: "plugin", Name: name}
	}
	mutate(record)
	return nil
}
