package model

// Properties holds the string valued tags of a view or visual object.
// A key that is present with an empty value differs from an absent key.
type Properties map[string]string

// Lookup returns the value of key and whether it is present
func (p Properties) Lookup(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	value, ok := p[key]
	return value, ok
}

// Has reports whether key is present, regardless of its value
func (p Properties) Has(key string) bool {
	_, ok := p.Lookup(key)
	return ok
}

// Get returns the value of key or an empty string
func (p Properties) Get(key string) string {
	value, _ := p.Lookup(key)
	return value
}
