// Package messages holds the randomized rest-reminder texts shown on
// the overlay. The catalog is embedded at compile time; every template
// may contain a "{}" placeholder for the rest duration in seconds.
package messages

import (
	"embed"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"eyeguard/internal/core/engine"
)

//go:embed catalog.yaml
var catalogFS embed.FS

type entry struct {
	Headline string `yaml:"headline"`
	Message  string `yaml:"message"`
}

type catalogFile struct {
	EyeRest []entry `yaml:"eye_rest"`
	Water   []entry `yaml:"water"`
	Walk    []entry `yaml:"walk"`
}

// Catalog picks rest messages by rest type.
type Catalog struct {
	mu      sync.Mutex
	rng     *rand.Rand
	eyeRest []entry
	water   []entry
	walk    []entry
}

var defaultEyeRest = entry{
	Headline: "Eye care time",
	Message:  "Rest your eyes for {} seconds",
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	rawData, err := catalogFS.ReadFile("catalog.yaml")
	if err != nil {
		return nil, fmt.Errorf("read message catalog: %w", err)
	}

	var fileData catalogFile
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return nil, fmt.Errorf("parse message catalog: %w", err)
	}

	return &Catalog{
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		eyeRest: fileData.EyeRest,
		water:   fileData.Water,
		walk:    fileData.Walk,
	}, nil
}

// MustLoad parses the embedded catalog or panics.
func MustLoad() *Catalog {
	catalog, err := Load()
	if err != nil {
		panic(err)
	}
	return catalog
}

// Pick returns a headline and message for the given rest type. The eye
// rest text is always the base; water and walk rests append their
// reminder to it.
func (catalog *Catalog) Pick(restType engine.RestType, restSeconds int) (string, string) {
	catalog.mu.Lock()
	defer catalog.mu.Unlock()

	base := catalog.pickLocked(catalog.eyeRest, defaultEyeRest)
	headline := substitute(base.Headline, restSeconds)
	message := substitute(base.Message, restSeconds)

	switch restType {
	case engine.RestWater:
		extra := catalog.pickLocked(catalog.water, entry{Message: "Drink a glass of water"})
		message += "\n\nAlso: " + substitute(extra.Message, restSeconds)
		headline = "Water break"
	case engine.RestWalk:
		extra := catalog.pickLocked(catalog.walk, entry{Message: "Stand up and move around"})
		message += "\n\nAlso: " + substitute(extra.Message, restSeconds)
		headline = "Time to move"
	}

	return headline, message
}

func (catalog *Catalog) pickLocked(entries []entry, fallback entry) entry {
	if len(entries) == 0 {
		return fallback
	}
	return entries[catalog.rng.Intn(len(entries))]
}

func substitute(template string, restSeconds int) string {
	return strings.ReplaceAll(template, "{}", strconv.Itoa(restSeconds))
}
