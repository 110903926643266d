package options

// IsPerfPlus reports the Performance Plus package. The package has its
// own PX code, but some cars were delivered without it and can only be
// recognized by the gray Perf+ wheels that ship exclusively with the
// package, so either signal counts.
func (o *Options) IsPerfPlus() bool {
	return o.HasOption("PX") || o.WheelType() == WTSG
}
