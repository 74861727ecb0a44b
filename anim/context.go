package anim

import (
	"fmt"
	"strings"
	"time"
)

// Separator joins a context namespace to its local keys
const Separator = ":"

// Context is a key-prefixing view over a shared Registry
// It owns no animation state; every operation rewrites the local key to
// namespace + ":" + key and delegates. Independent callers (screens,
// widgets) get short names without risking collisions
type Context struct {
	reg    *Registry
	prefix string
}

// NewContext binds a namespaced view to reg
// The namespace must be non-empty and must not contain the separator,
// otherwise keys from different namespaces could collide
func NewContext(reg *Registry, namespace string) (*Context, error) {
	if namespace == "" {
		return nil, fmt.Errorf("anim: namespace is empty")
	}
	if strings.Contains(namespace, Separator) {
		return nil, fmt.Errorf("anim: namespace %q contains separator %q", namespace, Separator)
	}
	return &Context{reg: reg, prefix: namespace + Separator}, nil
}

func (c *Context) key(k string) string {
	return c.prefix + k
}

// Start begins an interpolation under this context's namespace
func (c *Context) Start(key string, from, to float64, duration time.Duration, easing Easing) {
	c.reg.Start(c.key(key), from, to, duration, easing)
}

// Get returns the current value at the namespaced key, or def when absent
func (c *Context) Get(key string, def float64) float64 {
	return c.reg.Get(c.key(key), def)
}

// Get01 returns the current value clamped to [0,1], 0 when absent
func (c *Context) Get01(key string) float64 {
	return c.reg.Get01(c.key(key))
}

// IsActive reports whether the namespaced key exists and has not completed
func (c *Context) IsActive(key string) bool {
	return c.reg.IsActive(c.key(key))
}

// Exists reports whether the namespaced key is present
func (c *Context) Exists(key string) bool {
	return c.reg.Exists(c.key(key))
}

// Cancel removes the namespaced key immediately
func (c *Context) Cancel(key string) {
	c.reg.Cancel(c.key(key))
}

// CancelAll removes exactly the entries under this context's namespace,
// leaving every other registry entry untouched
func (c *Context) CancelAll() {
	c.reg.cancelPrefix(c.prefix)
}
