package ucf

// Limits bounds what Open will read from an archive, protecting against
// decompression bombs and absurd entry counts. Sizes are uncompressed bytes
// as declared by the archive; entries that expand beyond their declared size
// are rejected.
type Limits struct {
	MaxEntries   int
	MaxEntrySize uint64
	MaxTotalSize uint64
}

func defaultLimits() Limits {
	return Limits{
		MaxEntries:   10_000,
		MaxEntrySize: 512 << 20, // 512 MiB
		MaxTotalSize: 2 << 30,   // 2 GiB
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxEntries == 0 {
		l.MaxEntries = d.MaxEntries
	}
	if l.MaxEntrySize == 0 {
		l.MaxEntrySize = d.MaxEntrySize
	}
	if l.MaxTotalSize == 0 {
		l.MaxTotalSize = d.MaxTotalSize
	}
	return l
}
