package common

// This package contains the path and validation helpers shared by the
// filesystem packages: extension handling for the visible file types,
// slug and ancestor arithmetic on slash paths, user path validation and the
// sentinel errors callers match with errors.Is.
