// Package ucf reads and writes Universal Container Format (UCF) archives.
//
// UCF is Adobe's generic profile of the ZIP-based packaging convention also
// used by EPUB's Open Container Format (OCF). A UCF archive is an ordinary
// ZIP file with three extra structural rules:
//   - A mimetype entry holding the package's declared media type must be the
//     first entry and must be stored without compression.
//   - The META-INF/ namespace is reserved for package metadata entries.
//   - An optional META-INF/container.xml manifest lists "rootfiles": the
//     paths and media types of the package's primary content documents.
//
// # Package Model
//
// A [Package] is an insertion-ordered mapping from member name to content
// bytes. Member names are validated on every insertion: a name must not end
// with a period and must not contain " * : < > ? \, DEL, or a C0 control
// character. On save, names must also be unique after NFKD normalization and
// case folding, so the archive stays usable on case-insensitive filesystems.
//
// # Basic Usage
//
// To build and save a package:
//
//	pkg := ucf.New()
//	pkg.SetMimetype("application/epub+zip")
//	pkg.Set("OEBPS/content.opf", opf)
//	pkg.Rootfiles = []ucf.Rootfile{
//		{FullPath: "OEBPS/content.opf", MediaType: "application/oebps-package+xml"},
//	}
//	err := pkg.SaveFile("book.epub")
//
// To read one:
//
//	pkg, err := ucf.Open("book.epub")
//	mt := pkg.Mimetype()
//	cover, ok := pkg.Meta.Get("cover.xml")
//
// # Byte Layout
//
// Save writes the mimetype with a fixed local header: bytes 0-1 of the
// output are "PK", the ASCII bytes "mimetype" begin at offset 30, and the
// media type itself begins at offset 38. Readers that sniff this prefix to
// identify UCF/EPUB files depend on it, so the mimetype entry carries no
// modification time and no extra field.
//
// # Security Considerations
//
// Open enforces configurable [Limits] on entry count and uncompressed sizes
// to protect against decompression bombs.
package ucf
