package main

import "dyndata/internal/data"

// buildInfo is the demonstration Serializable/Deserializable adapter
// promised for the CLI (SPEC_FULL.md §4.3): a small typed
// aggregate that projects itself to and from a DynamicData tree
// instead of being built directly from JSON.
type buildInfo struct {
	Version string
	Commit  string
}

var (
	_ data.Serializable   = buildInfo{}
	_ data.Deserializable = (*buildInfo)(nil)
)

// ToData implements data.Serializable.
func (b buildInfo) ToData() *data.DynamicData {
	d := data.NewObject()
	d.AddKV("version", data.NewString(b.Version))
	d.AddKV("commit", data.NewString(b.Commit))
	return d
}

// FromData implements data.Deserializable.
func (b *buildInfo) FromData(d *data.DynamicData) error {
	v, err := d.Get("version")
	if err != nil {
		return err
	}
	c, err := d.Get("commit")
	if err != nil {
		return err
	}
	b.Version = v.AsString()
	b.Commit = c.AsString()
	return nil
}
