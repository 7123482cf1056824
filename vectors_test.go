package sm3

import "strings"

type vector struct {
	name   string
	data   string
	repeat int
	hash   string
}

func (v vector) input() []byte {
	if v.repeat > 1 {
		return []byte(strings.Repeat(v.data, v.repeat))
	}
	return []byte(v.data)
}

// Each hash was checked against an independent SM3 implementation.
var vectors = []vector{
	{name: "empty", data: "", hash: "1ab21d8355cfa17f8e61194831e81a8f22bec8c728fefb747ed035eb5082aa2b"},
	{name: "a", data: "a", hash: "623476ac18f65a2909e43c7fec61b49c7e764a91a18ccb82f1917a29c86c5e88"},
	{name: "abc", data: "abc", hash: "66c7f0f462eeedd9d1f2d46bdc10e4e24167c4875cf2f7a2297da02b8f4ba8e0"},
	{name: "alphabet", data: "abcdefghijklmnopqrstuvwxyz", hash: "b80fe97a4da24afc277564f66a359ef440462ad28dcc6d63adb24d5c20a61595"},
	{name: "abcd*16", data: "abcd", repeat: 16, hash: "debe9ff92275b8a138604889c18e5a4d6fdb70e5387e5765293dcba39c0c5732"},
	{name: "a*55", data: "a", repeat: 55, hash: "288337eef51eec62e7544d7270424c8dbe656254c99852870a73b2453a6a7fb1"},
	{name: "a*56", data: "a", repeat: 56, hash: "ba00ebedaab54065a5fd4f9f56326016203166bcee3eed44ea868d59d67aa3c8"},
	{name: "a*63", data: "a", repeat: 63, hash: "587308543551881ebd70d27ad358ff5dcdf24ac54822e2f7b7c3edce0985d21b"},
	{name: "a*64", data: "a", repeat: 64, hash: "616ec433c359e7c2b19f360e2b8f2a1b6e9ed76b8dc1a7d207b31a5341c611e9"},
	{name: "a*65", data: "a", repeat: 65, hash: "3d1d94afa238ec3e2bbc20ad504702b24c16f2889c94973f2f8da3526c44e4bc"},
	{name: "a*119", data: "a", repeat: 119, hash: "53282a90724e9eb79b18d06b5b8f7f02d046e18b29247dcdb064a136d5c4459a"},
	{name: "a*120", data: "a", repeat: 120, hash: "4c9f0fe9f36ffe0191af73560c4afb1b671be02ba2d0e0c161b1e03488c2a45c"},
	{name: "some data", data: "some data", hash: "28614bcc8f2f24f8b87d8e0b98a063367b0ddd449c11f0302ef78db088f85300"},
	{name: "a*1e6", data: "a", repeat: 1000000, hash: "c8aaf89429554029e231941a2acc0ad61ff2a5acd8fadd25847a3a732b3b02c3"},
}
