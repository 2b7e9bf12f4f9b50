package ucf

import (
	"fmt"
	"io"
	"slices"
)

const (
	// MimetypeName is the reserved member holding the package's declared
	// media type. It is always ASCII and is written first, uncompressed.
	MimetypeName = "mimetype"

	// DefaultMimetype is used when a package is created without an explicit
	// media type.
	DefaultMimetype = "application/octet-stream"
)

// Package is an in-memory UCF package: an insertion-ordered mapping from
// member name to content. Insertion order is the save order (after the
// mandatory mimetype-first rule), so output is reproducible.
//
// A Package is an exclusive staging area for one archive; it is not safe for
// concurrent use from multiple goroutines.
type Package struct {
	names []string
	files map[string][]byte

	// Rootfiles is the ordered container manifest. It is read from
	// META-INF/container.xml on open and persisted there on save; mutating
	// it between those points touches no storage.
	Rootfiles []Rootfile

	// Meta is a live view of the members under META-INF/.
	Meta MetaFiles

	cfg    config
	source string
}

// New returns an empty package with the default mimetype.
func New(opts ...Option) *Package {
	p := &Package{
		files: make(map[string][]byte),
		cfg:   defaultConfig(),
	}
	for _, opt := range opts {
		opt(&p.cfg)
	}
	p.Meta = MetaFiles{pkg: p}
	// The default mimetype is ASCII, so this cannot fail.
	p.put(MimetypeName, []byte(DefaultMimetype))
	return p
}

// Open reads the archive at name into a new package. Save with no explicit
// destination writes back to the same path.
func Open(name string, opts ...Option) (*Package, error) {
	p := New(opts...)
	p.source = name
	f, err := p.cfg.fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if err := p.readFrom(f, fi.Size()); err != nil {
		return nil, err
	}
	return p, nil
}

// OpenReader reads an archive from an in-memory or streamed source. A
// package opened this way has no implicit save destination.
func OpenReader(r io.ReaderAt, size int64, opts ...Option) (*Package, error) {
	p := New(opts...)
	if err := p.readFrom(r, size); err != nil {
		return nil, err
	}
	return p, nil
}

// readFrom loads every archive entry in archive order, then populates
// Rootfiles from META-INF/container.xml if that member exists. A package
// without a manifest simply has no rootfiles.
func (p *Package) readFrom(r io.ReaderAt, size int64) error {
	err := readArchive(r, size, p.cfg.limits, func(name string, data []byte) error {
		return p.Set(name, data)
	})
	if err != nil {
		return err
	}
	if data, ok := p.Meta.Get(containerName); ok {
		rootfiles, err := parseContainer(data)
		if err != nil {
			return err
		}
		p.Rootfiles = rootfiles
	}
	return nil
}

// Set stores content under name. The name is validated first; an invalid
// name leaves the package unchanged. Re-setting an existing member replaces
// its content but keeps its position in the save order.
func (p *Package) Set(name string, data []byte) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	p.put(name, data)
	return nil
}

func (p *Package) put(name string, data []byte) {
	if _, ok := p.files[name]; !ok {
		p.names = append(p.names, name)
	}
	p.files[name] = data
}

// Get returns the content stored under name. The returned slice is the
// stored value itself, not a copy.
func (p *Package) Get(name string) ([]byte, bool) {
	data, ok := p.files[name]
	return data, ok
}

// Has reports whether name is a member of the package.
func (p *Package) Has(name string) bool {
	_, ok := p.files[name]
	return ok
}

// Delete removes name from the package, reporting whether it was present.
func (p *Package) Delete(name string) bool {
	if _, ok := p.files[name]; !ok {
		return false
	}
	delete(p.files, name)
	i := slices.Index(p.names, name)
	p.names = slices.Delete(p.names, i, i+1)
	return true
}

// Len returns the number of members, including the mimetype.
func (p *Package) Len() int {
	return len(p.names)
}

// Names returns the member names in insertion order.
func (p *Package) Names() []string {
	return slices.Clone(p.names)
}

// Mimetype returns the raw bytes of the reserved mimetype member.
func (p *Package) Mimetype() []byte {
	return p.files[MimetypeName]
}

// SetMimetype stores mt as the package's declared media type. The value must
// be ASCII-representable; anything else is a format violation, never
// transcoded.
func (p *Package) SetMimetype(mt string) error {
	for i := 0; i < len(mt); i++ {
		if mt[i] >= 0x80 {
			return fmt.Errorf("%w: mimetype must be ASCII: %q", ErrFormat, mt)
		}
	}
	p.put(MimetypeName, []byte(mt))
	return nil
}

// Save writes the package back to the path it was opened from. It fails
// with ErrNoDestination for packages created empty or opened from a reader.
func (p *Package) Save() error {
	if p.source == "" {
		return ErrNoDestination
	}
	return p.SaveFile(p.source)
}

// SaveFile writes the package to the file at name, creating or truncating
// it. All validation runs before the file is touched, so a format violation
// leaves no partial archive behind.
func (p *Package) SaveFile(name string) error {
	if err := p.prepare(); err != nil {
		return err
	}
	f, err := p.cfg.fs.Create(name)
	if err != nil {
		return err
	}
	if err := p.writeArchive(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SaveTo writes the package to w. All validation runs before the first byte
// is written.
func (p *Package) SaveTo(w io.Writer) error {
	if err := p.prepare(); err != nil {
		return err
	}
	return p.writeArchive(w)
}

// prepare rebuilds the container manifest and checks the package-wide name
// rules. It must not write to the destination.
func (p *Package) prepare() error {
	if len(p.Rootfiles) > 0 {
		data, err := buildContainer(p.Rootfiles)
		if err != nil {
			return err
		}
		if err := p.Meta.Set(containerName, data); err != nil {
			return err
		}
	}
	if _, ok := p.files[MimetypeName]; !ok {
		return fmt.Errorf("%w: package has no mimetype member", ErrFormat)
	}
	seen := make(map[string]string, len(p.names))
	for _, name := range p.names {
		if err := ValidateName(name); err != nil {
			return err
		}
		key := normalizeName(name)
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("%w: conflicting member names %q and %q", ErrFormat, prev, name)
		}
		seen[key] = name
	}
	return nil
}

// writeArchive writes the mimetype first and uncompressed, then every other
// member deflated, in insertion order.
func (p *Package) writeArchive(w io.Writer) error {
	aw := newArchiveWriter(w, p.cfg.level)
	if err := aw.writeStored(MimetypeName, p.files[MimetypeName]); err != nil {
		aw.Close()
		return err
	}
	for _, name := range p.names {
		if name == MimetypeName {
			continue
		}
		if err := aw.writeDeflated(name, p.files[name]); err != nil {
			aw.Close()
			return err
		}
	}
	return aw.Close()
}
