// Package dbg gives values short readable names for debug output, so that
// shapes can be told apart when their corner lists all look alike.
package dbg

import (
	"fmt"
	"reflect"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func init() {
	// Names are handed out in order of demand, so they're made
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// A Namer remembers every value it has named, so it grows without bound. That
// is fine for debugging and nothing else.
type Namer struct {
	mu    sync.Mutex
	names map[interface{}]string
	// Times each generated name has been handed out
	used  map[string]int
	title cases.Caser
}

func NewNamer() *Namer {
	return &Namer{
		names: make(map[interface{}]string),
		used:  make(map[string]int),
		title: cases.Title(language.English),
	}
}

// Name returns the same name for the same value every time, and a different
// name for every other value. Nil pointers are all called "Ø". Values that
// aren't pointers are named by value, so equal values share a name.
func (n *Namer) Name(obj interface{}) string {
	if isNil(obj) {
		return "Ø"
	}

	key := keyOf(obj)
	n.mu.Lock()
	defer n.mu.Unlock()
	if name, ok := n.names[key]; ok {
		return name
	}
	name := n.title.String(petname.Adjective()) + n.title.String(petname.Name())
	n.used[name]++
	if count := n.used[name]; count > 1 {
		name = fmt.Sprintf("%s%d", name, count)
	}
	n.names[key] = name
	return name
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// Key for a value that can't be compared, such as a struct holding a slice
type described string

// Maps, slices and funcs can't be map keys, so they are named by address.
// Other incomparable values are named by their printed form.
func keyOf(obj interface{}) interface{} {
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Func:
		return v.Pointer()
	}
	if !v.Comparable() {
		return described(fmt.Sprintf("%T %#v", obj, obj))
	}
	return obj
}

var defaultNamer = NewNamer()

func Name(obj interface{}) string {
	return defaultNamer.Name(obj)
}
