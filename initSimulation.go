// initSimulation
/*
Copyright 2021 Bruce Golden and Matt Spangler

Permission is hereby granted, free of charge, to any person obtaining a copy of
this software and associated documentation files (the "Software"), to deal in
the Software without restriction, including without limitation the rights to
use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
of the Software, and to permit persons to whom the Software is furnished to do
so, subject to the following conditions:
The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/
package main

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	hjson "github.com/hjson/hjson-go"

	"github.com/jakemikulin/red-deer-model/census"
	"github.com/jakemikulin/red-deer-model/deer"
)

//go:embed defaults.hjson
var defaultsHjson []byte

type yearsConfig struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type modelConfig struct {
	ProbMale            float64  `json:"probMale"`
	ProbFemale          *float64 `json:"probFemale"`
	ProbYoungReproduce  float64  `json:"probYoungReproduce"`
	ProbMatureReproduce float64  `json:"probMatureReproduce"`
	YoungMinAge         int      `json:"youngMinAge"`
	YoungMaxAge         int      `json:"youngMaxAge"`
	MaxBreedingAge      int      `json:"maxBreedingAge"`
	MatureMaleAge       int      `json:"matureMaleAge"`
	ReproductionGate    string   `json:"reproductionGate"`
	MaxCapacityImpact   float64  `json:"maxCapacityImpact"`
	CapacityCurveSlope  float64  `json:"capacityCurveSlope"`
	MaximumIndividuals  int      `json:"maximumIndividuals"`
}

// Overrides are applied on top of the named calibration
type mortalityConfig struct {
	Calibration     string   `json:"calibration"`
	CalfMaxAge      *int     `json:"calfMaxAge"`
	CalfHazard      *float64 `json:"calfHazard"`
	RampIntercept   *float64 `json:"rampIntercept"`
	RampSlope       *float64 `json:"rampSlope"`
	SenescenceAge   *int     `json:"senescenceAge"`
	SenescenceScale *float64 `json:"senescenceScale"`
	SenescenceRate  *float64 `json:"senescenceRate"`
}

type foundationConfig struct {
	Stags       int    `json:"stags"`
	Hinds       int    `json:"hinds"`
	Calves      int    `json:"calves"`
	AdultMinAge int    `json:"adultMinAge"`
	AdultMaxAge int    `json:"adultMaxAge"`
	CalfMaxAge  int    `json:"calfMaxAge"`
	Spread      string `json:"spread"`
}

// The DMP returns call the adult classes either hinds/stags or
// matureHinds/matureStags; both are accepted.
type scheduleRow struct {
	Calves      int  `json:"calves"`
	Hinds       *int `json:"hinds"`
	Stags       *int `json:"stags"`
	MatureHinds *int `json:"matureHinds"`
	MatureStags *int `json:"matureStags"`
}

func (r scheduleRow) quota() deer.CullQuota {
	q := deer.CullQuota{Calves: r.Calves}
	switch {
	case r.Hinds != nil:
		q.Hinds = *r.Hinds
	case r.MatureHinds != nil:
		q.Hinds = *r.MatureHinds
	}
	switch {
	case r.Stags != nil:
		q.Stags = *r.Stags
	case r.MatureStags != nil:
		q.Stags = *r.MatureStags
	}
	return q
}

type harvestConfig struct {
	Policy       string                 `json:"policy"`
	Selection    string                 `json:"selection"`
	HuntingLimit int                    `json:"huntingLimit"`
	Quota        deer.ThresholdQuota    `json:"quota"`
	CalfMaxAge   int                    `json:"calfMaxAge"`
	Schedule     map[string]scheduleRow `json:"schedule"`
}

type censusConfig struct {
	CalfMaxAge int `json:"calfMaxAge"`
}

// simConfig mirrors the parameter file
type simConfig struct {
	Comment    string           `json:"comment"`
	Samples    int              `json:"samples"`
	Years      yearsConfig      `json:"years"`
	Model      modelConfig      `json:"model"`
	Mortality  mortalityConfig  `json:"mortality"`
	Foundation foundationConfig `json:"foundation"`
	Harvest    harvestConfig    `json:"harvest"`
	Census     censusConfig     `json:"census"`
}

// simulation is everything a run needs, checked and ready
type simulation struct {
	comment    string
	nSamples   int
	startYear  int
	endYear    int
	params     deer.Parameters
	policy     deer.HarvestPolicy
	foundation deer.FoundationHerd
	classes    census.Classes
	warnings   []string
}

func (s *simulation) years() []int {
	var ys []int
	for y := s.startYear; y <= s.endYear; y++ {
		ys = append(ys, y)
	}
	return ys
}

// decodeHjson reads an hjson document into a generic map and then into v
// through encoding/json, so the struct tags drive the field names.
func decodeHjson(data []byte, v interface{}) (map[string]interface{}, error) {
	var generic map[string]interface{}
	if err := hjson.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("parsing hjson: %w", err)
	}
	b, err := json.Marshal(generic)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return nil, fmt.Errorf("decoding parameters: %w", err)
	}
	return generic, nil
}

// loadParam overlays the parameter file on the embedded defaults. Keys that
// are not recognised come back as warnings.
func loadParam(data []byte) (simConfig, []string, error) {
	var cfg simConfig
	if _, err := decodeHjson(defaultsHjson, &cfg); err != nil {
		return cfg, nil, fmt.Errorf("embedded defaults: %w", err)
	}
	if len(data) == 0 {
		return cfg, nil, nil
	}
	// The defaults' schedule is an example; a file that has its own
	// schedule replaces it instead of merging with it.
	generic, err := decodeHjson(data, &simConfig{})
	if err != nil {
		return cfg, nil, err
	}
	if h, ok := generic["harvest"].(map[string]interface{}); ok {
		if _, ok := h["schedule"]; ok {
			cfg.Harvest.Schedule = nil
		}
	}
	if _, err := decodeHjson(data, &cfg); err != nil {
		return cfg, nil, err
	}
	return cfg, unknownKeys(generic, reflect.TypeOf(cfg), ""), nil
}

func jsonName(f reflect.StructField) string {
	return strings.Split(f.Tag.Get("json"), ",")[0]
}

// unknownKeys walks a decoded document against the struct it fills
func unknownKeys(doc map[string]interface{}, t reflect.Type, path string) []string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	fields := make(map[string]reflect.Type)
	var names []string
	for i := 0; i < t.NumField(); i++ {
		name := jsonName(t.Field(i))
		fields[name] = t.Field(i).Type
		names = append(names, name)
	}

	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var warnings []string
	for _, k := range keys {
		ft, ok := fields[k]
		if !ok {
			msg := fmt.Sprintf("unknown key '%s%s'", path, k)
			if s := suggest(k, names); s != "" {
				msg += fmt.Sprintf(" (did you mean '%s'?)", s)
			}
			warnings = append(warnings, msg)
			continue
		}
		sub, ok := doc[k].(map[string]interface{})
		if !ok {
			continue
		}
		if ft.Kind() == reflect.Map {
			subKeys := make([]string, 0, len(sub))
			for sk := range sub {
				subKeys = append(subKeys, sk)
			}
			sort.Strings(subKeys)
			for _, sk := range subKeys {
				if row, ok := sub[sk].(map[string]interface{}); ok {
					warnings = append(warnings, unknownKeys(row, ft.Elem(), path+k+"."+sk+".")...)
				}
			}
			continue
		}
		warnings = append(warnings, unknownKeys(sub, ft, path+k+".")...)
	}
	return warnings
}

// suggest returns the closest candidate, or "" when nothing is close
func suggest(word string, candidates []string) string {
	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(strings.ToLower(word), strings.ToLower(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > max(2, len(word)/3) {
		return ""
	}
	return best
}

func choose(key, value string, options []string) (int, error) {
	for i, o := range options {
		if strings.EqualFold(value, o) {
			return i, nil
		}
	}
	msg := fmt.Sprintf("%s: '%s' is not one of %s", key, value, strings.Join(options, ", "))
	if s := suggest(value, options); s != "" {
		msg += fmt.Sprintf(" (did you mean '%s'?)", s)
	}
	return 0, errors.New(msg)
}

func (m mortalityConfig) curve() (deer.MortalityCurve, error) {
	name := m.Calibration
	if name == "" {
		name = "baseline"
	}
	calibrations := make([]string, 0, len(deer.Calibrations))
	for k := range deer.Calibrations {
		calibrations = append(calibrations, k)
	}
	sort.Strings(calibrations)
	i, err := choose("mortality.calibration", name, calibrations)
	if err != nil {
		return deer.MortalityCurve{}, err
	}
	c := deer.Calibrations[calibrations[i]]()

	if m.CalfMaxAge != nil {
		c.CalfMaxAge = *m.CalfMaxAge
	}
	if m.CalfHazard != nil {
		c.CalfHazard = *m.CalfHazard
	}
	if m.RampIntercept != nil {
		c.RampIntercept = *m.RampIntercept
	}
	if m.RampSlope != nil {
		c.RampSlope = *m.RampSlope
	}
	if m.SenescenceAge != nil {
		c.SenescenceAge = *m.SenescenceAge
	}
	if m.SenescenceScale != nil {
		c.SenescenceScale = *m.SenescenceScale
	}
	if m.SenescenceRate != nil {
		c.SenescenceRate = *m.SenescenceRate
	}
	return c, nil
}

func (m modelConfig) parameters(curve deer.MortalityCurve) (deer.Parameters, error) {
	gate, err := choose("model.reproductionGate", m.ReproductionGate,
		[]string{deer.GateRequiresMale.String(), deer.GateBlockedByMale.String()})
	if err != nil {
		return deer.Parameters{}, err
	}
	p := deer.Parameters{
		ProbMale:            m.ProbMale,
		ProbFemale:          1 - m.ProbMale,
		ProbYoungReproduce:  m.ProbYoungReproduce,
		ProbMatureReproduce: m.ProbMatureReproduce,
		YoungMinAge:         m.YoungMinAge,
		YoungMaxAge:         m.YoungMaxAge,
		MaxBreedingAge:      m.MaxBreedingAge,
		MatureMaleAge:       m.MatureMaleAge,
		Gate:                deer.ReproductionGate(gate),
		MaxCapacityImpact:   m.MaxCapacityImpact,
		CapacityCurveSlope:  m.CapacityCurveSlope,
		MaximumIndividuals:  m.MaximumIndividuals,
		Mortality:           curve,
	}
	if m.ProbFemale != nil {
		p.ProbFemale = *m.ProbFemale
	}
	return p, p.Validate()
}

func (h harvestConfig) harvestPolicy() (deer.HarvestPolicy, error) {
	sel, err := choose("harvest.selection", h.Selection,
		[]string{deer.SelectLeading.String(), deer.SelectUniform.String()})
	if err != nil {
		return nil, err
	}
	kind, err := choose("harvest.policy", h.Policy, []string{"none", "threshold", "scheduled"})
	if err != nil {
		return nil, err
	}

	var policy deer.HarvestPolicy
	switch kind {
	case 0:
		policy = deer.NoHarvest{}
	case 1:
		policy = deer.ThresholdCulling{Limit: h.HuntingLimit, Quota: h.Quota, Selection: deer.Selection(sel)}
	case 2:
		schedule := make(map[int]deer.CullQuota, len(h.Schedule))
		for y, row := range h.Schedule {
			year, err := strconv.Atoi(strings.TrimSpace(y))
			if err != nil {
				return nil, fmt.Errorf("%w: schedule year '%s' is not a year", deer.ErrInvalidPolicy, y)
			}
			schedule[year] = row.quota()
		}
		policy = deer.ScheduledCulling{CalfMaxAge: h.CalfMaxAge, Schedule: schedule, Selection: deer.Selection(sel)}
	}
	return policy, policy.Validate()
}

func (f foundationConfig) herd() (deer.FoundationHerd, error) {
	spread, err := choose("foundation.spread", f.Spread,
		[]string{deer.SpreadEven.String(), deer.SpreadRandom.String()})
	if err != nil {
		return deer.FoundationHerd{}, err
	}
	herd := deer.FoundationHerd{
		Stags:       f.Stags,
		Hinds:       f.Hinds,
		Calves:      f.Calves,
		AdultMinAge: f.AdultMinAge,
		AdultMaxAge: f.AdultMaxAge,
		CalfMaxAge:  f.CalfMaxAge,
		Spread:      deer.Spread(spread),
	}
	return herd, herd.Validate()
}

// buildSimulation turns a decoded parameter file into a run. Every
// configuration problem is reported here, before the first year.
func buildSimulation(cfg simConfig) (*simulation, error) {
	curve, err := cfg.Mortality.curve()
	if err != nil {
		return nil, err
	}
	params, err := cfg.Model.parameters(curve)
	if err != nil {
		return nil, err
	}
	policy, err := cfg.Harvest.harvestPolicy()
	if err != nil {
		return nil, err
	}
	herd, err := cfg.Foundation.herd()
	if err != nil {
		return nil, err
	}
	if cfg.Samples <= 0 {
		return nil, fmt.Errorf("samples must be positive, got %d", cfg.Samples)
	}
	if cfg.Years.End < cfg.Years.Start {
		return nil, fmt.Errorf("years: end %d is before start %d", cfg.Years.End, cfg.Years.Start)
	}
	if cfg.Census.CalfMaxAge < 0 {
		return nil, fmt.Errorf("census.calfMaxAge must be non-negative, got %d", cfg.Census.CalfMaxAge)
	}

	return &simulation{
		comment:    cfg.Comment,
		nSamples:   cfg.Samples,
		startYear:  cfg.Years.Start,
		endYear:    cfg.Years.End,
		params:     params,
		policy:     policy,
		foundation: herd,
		classes:    census.Classes{CalfMaxAge: cfg.Census.CalfMaxAge},
	}, nil
}
