package num

const (
	intSize = 32 << (^uint(0) >> 63)

	maxInt = int(^uint(0) >> 1)
)

var oneDynUint = DynUint{b: []byte{1}}
