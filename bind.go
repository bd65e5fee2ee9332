package secureparams

import (
	"reflect"
	"sync"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register parameter tags with sentinel
	sentinel.Tag("param")
	sentinel.Tag("secure")
}

// bindFieldPlan describes how one struct field maps to a parameter entry.
type bindFieldPlan struct {
	index  []int  // reflect.Value.FieldByIndex access path
	key    string // parameter key from the param tag
	secure bool   // true if the field carries secure:"true"
}

var (
	bindPlans   = make(map[reflect.Type][]bindFieldPlan)
	bindPlansMu sync.RWMutex
)

// Bind builds Params from a struct's tagged string fields.
//
// Fields participate when they are of kind string and carry a param tag
// naming the parameter key. A secure:"true" tag marks the field's value as
// the secure variant; any other non-empty secure value is rejected. Untagged
// and non-string fields are ignored. Duplicate param keys follow field
// order, so the last field wins.
//
//	type Login struct {
//	    Username string `param:"username"`
//	    Password string `param:"password" secure:"true"`
//	}
//
// Field plans are cached per type, so repeated Bind calls for the same type
// skip the metadata scan.
func Bind[T any](v T) (Params, error) {
	plans, err := plansFor[T]()
	if err != nil {
		return Params{}, err
	}

	rv := reflect.ValueOf(v)
	pairs := make([]Pair, 0, len(plans))
	for _, plan := range plans {
		text := rv.FieldByIndex(plan.index).String()
		if plan.secure {
			pairs = append(pairs, Pair{Key: plan.key, Value: Secure(text)})
		} else {
			pairs = append(pairs, Pair{Key: plan.key, Value: Plain(text)})
		}
	}

	return New(pairs...), nil
}

// plansFor returns cached field plans for type T, building them on first use.
func plansFor[T any]() ([]bindFieldPlan, error) {
	typ := reflect.TypeFor[T]()

	// Fast path: read-lock cache check
	bindPlansMu.RLock()
	if cached, ok := bindPlans[typ]; ok {
		bindPlansMu.RUnlock()
		return cached, nil
	}
	bindPlansMu.RUnlock()

	// Slow path: build and cache with write-lock
	bindPlansMu.Lock()
	defer bindPlansMu.Unlock()

	// Double-check pattern
	if cached, ok := bindPlans[typ]; ok {
		return cached, nil
	}

	plans, err := buildBindPlans[T]()
	if err != nil {
		return nil, err
	}

	bindPlans[typ] = plans
	return plans, nil
}

// buildBindPlans creates field plans for type T by scanning struct tags.
func buildBindPlans[T any]() ([]bindFieldPlan, error) {
	spec := sentinel.Scan[T]()

	var plans []bindFieldPlan
	for _, field := range spec.Fields {
		key, ok := field.Tags["param"]
		if !ok {
			continue
		}
		if field.ReflectType.Kind() != reflect.String {
			continue
		}

		plan := bindFieldPlan{
			index: field.Index,
			key:   key,
		}

		switch field.Tags["secure"] {
		case "true":
			plan.secure = true
		case "", "false":
		default:
			return nil, newBindError(ErrInvalidTag, field.Name, field.Tags["secure"])
		}

		plans = append(plans, plan)
	}

	return plans, nil
}

// ResetBindCache clears the cached field plans.
// This is primarily useful for test isolation.
func ResetBindCache() {
	bindPlansMu.Lock()
	defer bindPlansMu.Unlock()
	bindPlans = make(map[reflect.Type][]bindFieldPlan)
}
