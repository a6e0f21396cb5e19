package store

import (
	"github.com/fox-one/msgpack"
)

func marshal(val interface{}) []byte {
	buf, err := msgpack.Marshal(val)
	if err != nil {
		panic(err)
	}
	return buf
}

func unmarshal(buf []byte, val interface{}) error {
	return msgpack.Unmarshal(buf, val)
}
