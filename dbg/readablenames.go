package dbg

import (
	"fmt"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary values into random readable names. It leaks memory
// but generates the names lazily, so it's not a problem unless you're actually
// using it. This is helpful for labeling constructed points, which have no
// name of their own, when debugging.

var (
	memo   map[interface{}]string
	memoMu sync.Mutex
)

func init() {
	memo = make(map[interface{}]string)
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// The readable name for obj, which must be comparable. The same value always
// gets the same name within a run.
func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}

	memoMu.Lock()
	defer memoMu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
