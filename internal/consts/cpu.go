package consts

import "golang.org/x/sys/cpu"

// IsBigEndian is a constant so the byte swapping paths in utils compile
// away on hosts that already store words in message order.
const IsBigEndian = cpu.IsBigEndian
