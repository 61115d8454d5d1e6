package domain

// EventRecord is one historical log of a contract, shaped after the records
// web3's getPastEvents returns so existing e2e fixtures keep matching.
type EventRecord struct {
	Address          string         `json:"address" yaml:"address"`
	BlockHash        string         `json:"blockHash" yaml:"blockHash"`
	BlockNumber      uint64         `json:"blockNumber" yaml:"blockNumber"`
	LogIndex         uint64         `json:"logIndex" yaml:"logIndex"`
	Removed          bool           `json:"removed" yaml:"removed"`
	TransactionHash  string         `json:"transactionHash" yaml:"transactionHash"`
	TransactionIndex uint64         `json:"transactionIndex" yaml:"transactionIndex"`
	ID               string         `json:"id" yaml:"id"`
	ReturnValues     map[string]any `json:"returnValues" yaml:"returnValues"`
	Event            string         `json:"event,omitempty" yaml:"event,omitempty"`
	Signature        string         `json:"signature,omitempty" yaml:"signature,omitempty"`
	Raw              RawLog         `json:"raw" yaml:"raw"`
}

// RawLog holds the undecoded payload of a log
type RawLog struct {
	Data   string   `json:"data" yaml:"data"`
	Topics []string `json:"topics" yaml:"topics"`
}

// Decoded reports whether the log matched an event in the ABI
func (r *EventRecord) Decoded() bool {
	return r.Event != ""
}
