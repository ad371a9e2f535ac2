package common

// CandiPath is the path to the compiler install directory.
var CandiPath string = ""

// CandiVersion is the current Candi toolchain version as a string.
const CandiVersion string = "0.1.0"

// ModuleFileName is the name for Candi module descriptor files.
const ModuleFileName string = "candi-mod.toml"

// FileExt is the file extension for a Candi source file.
const FileExt string = ".cd"

// CacheDir is the compilation caching directory name.
const CacheDir string = ".candi"
