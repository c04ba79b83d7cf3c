package runesplit

// Entry is a key/value pair produced by a MapSplitter.
type Entry struct {
	Key   string
	Value string
}

// MapSplitter splits strings of the form "k1=v1&k2=v2" into key/value pairs.
// The entry splitter separates the entries, the key/value splitter separates
// each entry into its key and value. Both keep their own options, so trimming
// or omission configured on the entry splitter applies to whole entries.
type MapSplitter struct {
	entries  Splitter
	keyValue Splitter
}

// WithKeyValueSeparator returns a MapSplitter that splits each token of sp
// into a key and a value around the literal sep. An empty sep fails like
// OnString.
func (sp Splitter) WithKeyValueSeparator(sep string) (MapSplitter, error) {
	kv, err := OnString(sep)
	if err != nil {
		return MapSplitter{}, err
	}
	return sp.WithKeyValueSplitter(kv), nil
}

// WithKeyValueSplitter returns a MapSplitter that splits each token of sp into
// a key and a value with kv.
func (sp Splitter) WithKeyValueSplitter(kv Splitter) MapSplitter {
	return MapSplitter{entries: sp, keyValue: kv}
}

// Entries splits str into its entries in input order. Every entry must split
// into exactly a key and a value, otherwise an error wrapping ErrInvalidEntry
// is returned. A key appearing twice yields an error wrapping
// ErrDuplicateKey.
func (ms MapSplitter) Entries(str string) ([]Entry, error) {
	var result []Entry
	seen := make(map[string]struct{})

	entries := ms.entries.Tokens(str)
	for entries.Next() {
		entry := entries.Str()

		fields := ms.keyValue.Tokens(entry)
		if !fields.Next() {
			return nil, newEntryError(entry)
		}
		key := fields.Str()
		if !fields.Next() {
			return nil, newEntryError(entry)
		}
		value := fields.Str()
		if fields.Next() {
			return nil, newEntryError(entry)
		}

		if _, ok := seen[key]; ok {
			return nil, newDuplicateKeyError(key)
		}
		seen[key] = struct{}{}
		result = append(result, Entry{Key: key, Value: value})
	}
	return result, nil
}

// Split is like Entries but returns the pairs as a map.
func (ms MapSplitter) Split(str string) (map[string]string, error) {
	entries, err := ms.Entries(str)
	if err != nil {
		return nil, err
	}
	result := make(map[string]string, len(entries))
	for _, e := range entries {
		result[e.Key] = e.Value
	}
	return result, nil
}
