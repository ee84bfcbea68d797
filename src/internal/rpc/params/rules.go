// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package params

// Rule marks the parameter at Index (zero-based) of Method as a non-string
// value that must be parsed as JSON before it is sent.
type Rule struct {
	Method string `json:"method" yaml:"method"`
	Index  int    `json:"index" yaml:"index"`
}

// DefaultRules is the compiled-in conversion list. It is part of the wire
// contract with the node and must be extended whenever the server adds a
// method or parameter that is not a string.
var DefaultRules = []Rule{
	{"stop", 0},
	{"setmocktime", 0},
	{"getaddednodeinfo", 0},
	{"generate", 0},
	{"generatepos", 0},
	{"generatetoaddress", 0},
	{"generatetoaddress", 2},
	{"getnetworkhashps", 0},
	{"getnetworkhashps", 1},
	{"sendtoaddress", 1},
	{"sendtoaddress", 4},
	{"settxfee", 0},
	{"getreceivedbyaddress", 1},
	{"listreceivedbyaddress", 0},
	{"listreceivedbyaddress", 1},
	{"listreceivedbyaddress", 2},
	{"getbalance", 1},
	{"getbalance", 2},
	{"getblockhash", 0},
	{"move", 2},
	{"move", 3},
	{"sendfrom", 2},
	{"sendfrom", 3},
	{"listtransactions", 0},
	{"listtransactions", 1},
	{"listtransactions", 2},
	{"walletpassphrase", 1},
	{"walletpassphrase", 2},
	{"getblocktemplate", 0},
	{"listsinceblock", 1},
	{"listsinceblock", 2},
	{"sendmany", 1},
	{"sendmany", 2},
	{"sendmany", 4},
	{"addmultisigaddress", 0},
	{"addmultisigaddress", 1},
	{"createmultisig", 0},
	{"createmultisig", 1},
	{"listunspent", 0},
	{"listunspent", 1},
	{"listunspent", 2},
	{"getblock", 1},
	{"getblockheader", 1},
	{"gettransaction", 1},
	{"getrawtransaction", 1},
	{"createrawtransaction", 0},
	{"createrawtransaction", 1},
	{"createrawtransaction", 2},
	{"signrawtransaction", 1},
	{"signrawtransaction", 2},
	{"sendrawtransaction", 1},
	{"fundrawtransaction", 1},
	{"gettxout", 1},
	{"gettxout", 2},
	{"gettxoutproof", 0},
	{"lockunspent", 0},
	{"lockunspent", 1},
	{"importprivkey", 2},
	{"importaddress", 1},
	{"importaddress", 2},
	{"importpubkey", 2},
	{"verifychain", 0},
	{"verifychain", 1},
	{"keypoolrefill", 0},
	{"getrawmempool", 0},
	{"estimatefee", 0},
	{"prioritisetransaction", 1},
	{"prioritisetransaction", 2},
	{"setban", 2},
	{"setban", 3},
}
