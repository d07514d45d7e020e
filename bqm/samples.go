// Package bqm - energy-annotated sample collections.
package bqm

import "sort"

// Record pairs one sample with its energy under some model.
type Record struct {
	Sample Sample
	Energy float64
}

// SampleSet is an ordered collection of energy-annotated samples of one
// vartype. Records are kept sorted ascending by energy, so First is the
// best known assignment. A SampleSet is immutable once built.
type SampleSet struct {
	vartype Vartype
	records []Record
}

// NewSampleSet builds a sample set of the given vartype from records,
// sorting them ascending by energy (stable, so equal-energy records
// keep their given order).
// Complexity: O(n log n).
func NewSampleSet(vt Vartype, records ...Record) *SampleSet {
	rs := make([]Record, len(records))
	copy(rs, records)
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].Energy < rs[j].Energy })
	return &SampleSet{vartype: vt, records: rs}
}

// FromSamples evaluates each sample's energy under b and returns the
// resulting set, vartype taken from b. Fails with b's evaluation error
// on an incomplete sample.
// Complexity: O(n·(V+E) + n log n).
func FromSamples(b *BQM, samples ...Sample) (*SampleSet, error) {
	records := make([]Record, 0, len(samples))
	for _, s := range samples {
		e, err := b.Energy(s)
		if err != nil {
			return nil, err
		}
		records = append(records, Record{Sample: s.Clone(), Energy: e})
	}
	return NewSampleSet(b.Vartype(), records...), nil
}

// Len returns the number of records.
func (ss *SampleSet) Len() int { return len(ss.records) }

// Vartype returns the vartype shared by all samples in the set.
func (ss *SampleSet) Vartype() Vartype { return ss.vartype }

// First returns the lowest-energy record, or ErrEmptySampleSet.
func (ss *SampleSet) First() (Record, error) {
	if len(ss.records) == 0 {
		return Record{}, ErrEmptySampleSet
	}
	return ss.records[0], nil
}

// Record returns the i-th record in ascending-energy order.
// The caller must keep i within [0, Len).
func (ss *SampleSet) Record(i int) Record { return ss.records[i] }

// ChangeVartype returns a set with every sample's values converted to
// vt (Binary 0 ↔ Spin -1, 1 ↔ +1). The underlying assignments are
// preserved: converting back yields the original values. Energies are
// carried over unchanged; they describe the state, not the encoding.
// Returns the receiver when vt already matches.
// Complexity: O(n·V).
func (ss *SampleSet) ChangeVartype(vt Vartype) *SampleSet {
	if vt == ss.vartype {
		return ss
	}
	records := make([]Record, len(ss.records))
	for i, r := range ss.records {
		conv := make(Sample, len(r.Sample))
		for v, x := range r.Sample {
			conv[v] = convertValue(x, ss.vartype, vt)
		}
		records[i] = Record{Sample: conv, Energy: r.Energy}
	}
	return &SampleSet{vartype: vt, records: records}
}
