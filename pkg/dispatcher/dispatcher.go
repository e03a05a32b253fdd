// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownAction = errors.New("unknown function")

// Action runs one named operation. Actions build whatever they need
// themselves, so nothing is dialed until one is picked.
type Action func(ctx context.Context) error

type Dispatcher struct {
	actions map[string]Action
}

func New() *Dispatcher {
	return &Dispatcher{actions: map[string]Action{}}
}

// Register adds action under name. Registering a name twice panics.
func (d *Dispatcher) Register(name string, action Action) *Dispatcher {
	if name == "" || action == nil {
		panic("dispatcher: empty action registration")
	}
	if _, ok := d.actions[name]; ok {
		panic(fmt.Sprintf("dispatcher: action %q registered twice", name))
	}
	d.actions[name] = action
	return d
}

// Dispatch runs the action registered under name. Errors from the action
// are returned as they are.
func (d *Dispatcher) Dispatch(ctx context.Context, name string) error {
	action, ok := d.actions[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return action(ctx)
}

func (d *Dispatcher) Names() []string {
	names := make([]string, 0, len(d.actions))
	for name := range d.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
