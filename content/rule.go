// Copyright (c) 2026, WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package content

import (
	"encoding/json"
	"fmt"
)

// RuleOperator combines the terms of a rule group.
type RuleOperator string

const (
	RuleAnd RuleOperator = "and"
	RuleOr  RuleOperator = "or"
)

// CompareOperator compares two rule literals.
type CompareOperator string

const (
	CompareEqual          CompareOperator = "eq"
	CompareNotEqual       CompareOperator = "ne"
	CompareLess           CompareOperator = "lt"
	CompareLessOrEqual    CompareOperator = "le"
	CompareGreater        CompareOperator = "gt"
	CompareGreaterOrEqual CompareOperator = "ge"
	CompareContains       CompareOperator = "contains"
)

// LiteralKind discriminates rule literal types.
type LiteralKind string

const (
	LiteralString   LiteralKind = "string"
	LiteralNumber   LiteralKind = "number"
	LiteralBoolean  LiteralKind = "boolean"
	LiteralVariable LiteralKind = "variable"
)

// RuleLiteral is one operand of a binary comparison. Exactly the field
// matching Kind is meaningful.
type RuleLiteral struct {
	Kind     LiteralKind `json:"kind"`
	Text     string      `json:"text,omitempty"`
	Number   float64     `json:"number,omitempty"`
	Bool     bool        `json:"bool,omitempty"`
	Variable string      `json:"variable,omitempty"`
}

func (l RuleLiteral) collectRefs(acc *[]Ref) {
	if l.Kind == LiteralVariable {
		addRef(acc, RefVariable, l.Variable)
	}
}

// RuleTerm is either a RuleBinary or a nested RuleGroup.
type RuleTerm interface {
	termKind() string
	collectRefs(acc *[]Ref)
}

// RuleBinary compares two literals.
type RuleBinary struct {
	Left     RuleLiteral     `json:"left"`
	Operator CompareOperator `json:"operator"`
	Right    RuleLiteral     `json:"right"`
}

func (b *RuleBinary) termKind() string { return "binary" }

func (b *RuleBinary) collectRefs(acc *[]Ref) {
	b.Left.collectRefs(acc)
	b.Right.collectRefs(acc)
}

// RuleGroup combines terms with a single operator, optionally negated.
type RuleGroup struct {
	Operator RuleOperator `json:"operator"`
	Negated  bool         `json:"negated,omitempty"`
	Terms    []RuleTerm   `json:"terms"`
}

func (g *RuleGroup) termKind() string { return "group" }

func (g *RuleGroup) collectRefs(acc *[]Ref) {
	for _, t := range g.Terms {
		t.collectRefs(acc)
	}
}

// CollectRuleRefs returns every variable reference contained in the rule
// expression tree, in walk order.
func CollectRuleRefs(g *RuleGroup) []Ref {
	var acc []Ref
	if g != nil {
		g.collectRefs(&acc)
	}
	return acc
}

type ruleTermEnvelope struct {
	Kind string `json:"kind"`
}

// MarshalJSON encodes the group with kind-discriminated terms.
func (g *RuleGroup) MarshalJSON() ([]byte, error) {
	terms := make([]json.RawMessage, 0, len(g.Terms))
	for _, t := range g.Terms {
		raw, err := marshalRuleTerm(t)
		if err != nil {
			return nil, err
		}
		terms = append(terms, raw)
	}
	return json.Marshal(struct {
		Kind     string            `json:"kind"`
		Operator RuleOperator      `json:"operator"`
		Negated  bool              `json:"negated,omitempty"`
		Terms    []json.RawMessage `json:"terms"`
	}{Kind: "group", Operator: g.Operator, Negated: g.Negated, Terms: terms})
}

// UnmarshalJSON decodes a kind-discriminated rule group.
func (g *RuleGroup) UnmarshalJSON(data []byte) error {
	var raw struct {
		Operator RuleOperator      `json:"operator"`
		Negated  bool              `json:"negated"`
		Terms    []json.RawMessage `json:"terms"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	g.Operator = raw.Operator
	g.Negated = raw.Negated
	g.Terms = nil
	for _, t := range raw.Terms {
		term, err := unmarshalRuleTerm(t)
		if err != nil {
			return err
		}
		g.Terms = append(g.Terms, term)
	}
	return nil
}

func marshalRuleTerm(t RuleTerm) (json.RawMessage, error) {
	switch v := t.(type) {
	case *RuleGroup:
		return json.Marshal(v)
	case *RuleBinary:
		return json.Marshal(struct {
			Kind string `json:"kind"`
			*RuleBinary
		}{Kind: "binary", RuleBinary: v})
	default:
		return nil, fmt.Errorf("unknown rule term type %T", t)
	}
}

func unmarshalRuleTerm(data json.RawMessage) (RuleTerm, error) {
	var env ruleTermEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	switch env.Kind {
	case "group":
		var g RuleGroup
		if err := json.Unmarshal(data, &g); err != nil {
			return nil, err
		}
		return &g, nil
	case "binary":
		var b RuleBinary
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, err
		}
		return &b, nil
	default:
		return nil, fmt.Errorf("unknown rule term kind %q", env.Kind)
	}
}
