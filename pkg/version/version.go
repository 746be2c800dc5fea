package version

// EmptyValue is the value reported when the binary was built without
// version stamping, such as a plain `go build` or a unit test.
const EmptyValue = "dev"

// Version is the release version. Release builds overwrite it with
// -ldflags "-X github.com/Theomat/rusync/pkg/version.Version=<tag>".
var Version = EmptyValue
