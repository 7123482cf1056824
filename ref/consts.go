package ref

const (
	t0 = 0x79CC4519
	t1 = 0x7A879D8A
)
