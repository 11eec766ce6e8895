/*
 * Copyright (c) 2025, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package modeling

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"k8s.io/apimachinery/pkg/util/validation/field"
	"k8s.io/klog/v2"

	"github.com/AMD-AIG-AIMA/SAFE/uniretrieval/pkg/arguments"
	commonerrors "github.com/AMD-AIG-AIMA/SAFE/uniretrieval/pkg/errors"
)

// Factory builds a model from its validated arguments.
type Factory func(args arguments.ModelConfig) (Model, error)

type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

var defaultRegistry = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry returns the process wide registry used by Register and Get.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

func Register(name string, factory Factory) error {
	return defaultRegistry.Register(name, factory)
}

func Get(name string) (Factory, error) {
	return defaultRegistry.Get(name)
}

// Register adds a factory under a case-insensitive name. Names can only be registered once.
func (r *Registry) Register(name string, factory Factory) error {
	key := normalize(name)
	if key == "" {
		return fmt.Errorf("model name is empty")
	}
	if factory == nil {
		return fmt.Errorf("factory of model %s is nil", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[key]; ok {
		return fmt.Errorf("model %s is already registered", name)
	}
	r.factories[key] = factory
	klog.V(4).Infof("registered model %s", key)
	return nil
}

func (r *Registry) Get(name string) (Factory, error) {
	r.mu.RLock()
	factory, ok := r.factories[normalize(name)]
	r.mu.RUnlock()
	if !ok {
		return nil, commonerrors.NewInvalidConfiguration("ModelArguments", field.ErrorList{
			field.NotSupported(field.NewPath("model_name"), name, r.Names()),
		})
	}
	return factory, nil
}

// Names returns the registered model names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
