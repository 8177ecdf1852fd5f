// Package story holds the dashboard's static narrative text.
package story

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed story.yaml
var storyYAML []byte

// Sections are the headings of the collapsible dashboard panels.
type Sections struct {
	Summary string `yaml:"summary" json:"summary"`
	Hourly  string `yaml:"hourly" json:"hourly"`
	Weekday string `yaml:"weekday" json:"weekday"`
	Map     string `yaml:"map" json:"map"`
	Story   string `yaml:"story" json:"story"`
}

// Bullet is one storytelling finding: a bold lead followed by detail.
type Bullet struct {
	Lead string `yaml:"lead" json:"lead"`
	Text string `yaml:"text" json:"text"`
}

// Story is the static copy rendered around the charts.
type Story struct {
	Title          string   `yaml:"title" json:"title"`
	Subtitle       string   `yaml:"subtitle" json:"subtitle"`
	UploadPrompt   string   `yaml:"upload_prompt" json:"upload_prompt"`
	Sections       Sections `yaml:"sections" json:"sections"`
	HourlyNote     string   `yaml:"hourly_note" json:"hourly_note"`
	MapNote        string   `yaml:"map_note" json:"map_note"`
	MapUnavailable string   `yaml:"map_unavailable" json:"map_unavailable"`
	EmptyResult    string   `yaml:"empty_result" json:"empty_result"`
	Bullets        []Bullet `yaml:"bullets" json:"bullets"`
	Closing        string   `yaml:"closing" json:"closing"`
	Footer         string   `yaml:"footer" json:"footer"`
}

// Parse decodes narrative text. Unknown keys are rejected.
func Parse(data []byte) (Story, error) {
	var s Story
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Story{}, fmt.Errorf("parse story: %w", err)
	}
	if s.Title == "" {
		return Story{}, fmt.Errorf("parse story: title is required")
	}
	return s, nil
}

// Default returns the embedded narrative. It panics if story.yaml is invalid.
func Default() Story {
	s, err := Parse(storyYAML)
	if err != nil {
		panic(err)
	}
	return s
}
