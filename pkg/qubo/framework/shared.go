package framework

// FrequencyTable counts genotype keys within one population.
type FrequencyTable [NumKeys]int

// Add counts one occurrence of key and returns the running count.
func (t *FrequencyTable) Add(key int) int {
	t[key]++
	return t[key]
}

// Mode returns the most frequent key and its count. Ties go to the lowest key.
func (t *FrequencyTable) Mode() (key, count int) {
	for k, c := range t {
		if c > count {
			key, count = k, c
		}
	}
	return key, count
}

// CountKeys builds a fresh table for the population.
func CountKeys(p *Population) *FrequencyTable {
	t := new(FrequencyTable)
	for i := range p {
		t.Add(p[i].Genotype.Key())
	}
	return t
}

// IndexOfKey returns the first population index holding key, or -1.
func IndexOfKey(p *Population, key int) int {
	for i := range p {
		if p[i].Genotype.Key() == key {
			return i
		}
	}
	return -1
}
