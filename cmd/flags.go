package cmd

import (
	"fmt"
	"strconv"
)

// optionalInt is an int flag that remembers whether it was given,
// so --id 0 is distinguishable from no --id at all.
type optionalInt struct {
	value int
	set   bool
}

func (o *optionalInt) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%q is not an integer", s)
	}
	o.value = v
	o.set = true
	return nil
}

func (o *optionalInt) String() string {
	if !o.set {
		return ""
	}
	return strconv.Itoa(o.value)
}

func (o *optionalInt) Type() string {
	return "int"
}

// optionalString is a string flag that remembers whether it was given
type optionalString struct {
	value string
	set   bool
}

func (o *optionalString) Set(s string) error {
	o.value = s
	o.set = true
	return nil
}

func (o *optionalString) String() string {
	return o.value
}

func (o *optionalString) Type() string {
	return "string"
}

// Note flags are accepted by every command; each command checks the
// combination it needs.
var (
	noteID    optionalInt
	noteTitle optionalString
	noteMsg   optionalString
	noteDate  optionalString
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Var(&noteID, "id", "Note ID")
	flags.Var(&noteTitle, "title", "Note title")
	flags.Var(&noteMsg, "msg", "Note body")
	flags.Var(&noteDate, "date", "Date to filter notes by (YYYY-MM-DD)")
}
