package sat

import (
	"sort"
	"strconv"

	"github.com/cockroachdb/errors"
)

// buildEntities maps each record onto an unresolved entity keyed by record
// number. Pointer fields still hold raw tokens at this point. Records of
// version >= 700 files carry an explicit id column; older files get -1.
func buildEntities(records []Record, h *Header) (map[int]*Entity, error) {
	hasIDs := h.hasEntityIDs()
	entities := make(map[int]*Entity, len(records))
	for _, rec := range records {
		if len(rec.Tokens) < 2 {
			return nil, errors.Newf("record %d: expected name and attribute pointer, got %d tokens",
				rec.Num, len(rec.Tokens))
		}
		e := &Entity{Name: rec.Tokens[0], ID: -1, attrPtr: rec.Tokens[1]}
		data := rec.Tokens[2:]
		if hasIDs {
			if len(rec.Tokens) < 3 {
				return nil, errors.Newf("record %d: missing entity id", rec.Num)
			}
			id, err := strconv.Atoi(rec.Tokens[2])
			if err != nil {
				return nil, errors.Wrapf(err, "record %d: entity id", rec.Num)
			}
			e.ID = id
			data = rec.Tokens[3:]
		}
		e.Data = make([]Datum, len(data))
		for i, tok := range data {
			e.Data[i] = Lit(tok)
		}
		entities[rec.Num] = e
	}
	return entities, nil
}

// resolvePointers turns every raw pointer token into a live reference and
// returns the entities ordered by ascending record number. That order is
// the one and only index basis used from here on. The whole population is
// already built, so forward references resolve like any other.
func resolvePointers(entities map[int]*Entity) ([]*Entity, error) {
	ptr := func(tok string) (*Entity, error) {
		if !IsPtr(tok) {
			return nil, errors.Wrapf(ErrMalformedPointer, "%q", tok)
		}
		num, err := strconv.Atoi(tok[1:])
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedPointer, "%q", tok)
		}
		if num == -1 {
			return NullPtr, nil
		}
		target, ok := entities[num]
		if !ok {
			return nil, errors.Wrapf(ErrUnresolvedRef, "record %d", num)
		}
		return target, nil
	}

	nums := make([]int, 0, len(entities))
	for num := range entities {
		nums = append(nums, num)
	}
	sort.Ints(nums)

	resolved := make([]*Entity, 0, len(entities))
	for _, num := range nums {
		e := entities[num]
		attr, err := ptr(e.attrPtr)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d: attribute pointer", num)
		}
		e.Attributes = attr
		e.attrPtr = "$-1"
		for i, d := range e.Data {
			if !IsPtr(d.Literal()) {
				continue
			}
			target, err := ptr(d.Literal())
			if err != nil {
				return nil, errors.Wrapf(err, "record %d: data token %d", num, i)
			}
			e.Data[i] = Ref(target)
		}
		resolved = append(resolved, e)
	}
	return resolved, nil
}
