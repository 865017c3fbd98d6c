package driver

import "github.com/adamh-utopi/Payload-decoders/internal/records"

// Output keys shared by several layouts.
const (
	KeyPayloadType = "payloadtype"
	KeyTimestamp   = "timestamp"
	KeyErrorCodes  = "errorcodes"
	KeyStorePeriod = "storeperiod"
)

func power(key string, start int) records.Field {
	return records.Scaled(key, start, start+6, 0.1, 1)
}

func flow(key string, start int) records.Field {
	return records.Scaled(key, start, start+6, 0.001, 3)
}

func temperature(key string, start int) records.Field {
	return records.Scaled(key, start, start+4, 0.01, 3)
}

func counter(key string, start int) records.Field {
	return records.Uint(key, start, start+8)
}

var basicLT = Driver{
	Variant:     VariantBasicLT,
	PayloadType: "BasicLT",
	Length:      LengthBasicLT,
	Fields: []records.Field{
		counter(KeyTimestamp, 0),
		records.ErrorCode(KeyErrorCodes, 8),
		counter("energyheatpp", 10),
		counter("energycoolpp", 18),
		counter("volumepp", 26),
		power("powerpp", 34),
		flow("flowpp", 40),
		temperature("temp1pp", 46),
		temperature("temp2pp", 50),
		counter("workingtime", 54),
		counter(KeyStorePeriod, 62),
	},
}

var basicWithHeat = Driver{
	Variant:     VariantBasicWithHeat,
	PayloadType: "Basic with heating energy",
	Length:      LengthBasicWithHeat,
	Fields: []records.Field{
		counter(KeyTimestamp, 0),
		records.ErrorCode(KeyErrorCodes, 8),
		counter("energyheat", 10),
		counter("volume", 18),
		counter("energyheatpp1", 26),
		counter("volumepp1", 34),
		counter("energyheatpp2", 42),
		counter("volumepp2", 50),
		counter("energyheatpp3", 58),
		counter("volumepp3", 66),
		counter(KeyStorePeriod, 74),
	},
}

var basicWithCool = Driver{
	Variant:     VariantBasicWithCool,
	PayloadType: "Basic with cooling energy",
	Length:      LengthBasicWithCool,
	Fields: []records.Field{
		counter(KeyTimestamp, 0),
		records.ErrorCode(KeyErrorCodes, 8),
		counter("energyheat", 10),
		counter("energycool", 18),
		counter("volume", 26),
		counter("energyheatpp1", 34),
		counter("energycoolpp1", 42),
		counter("volumepp1", 50),
		counter("energyheatpp2", 58),
		counter("energycoolpp2", 66),
		counter("volumepp2", 74),
		counter(KeyStorePeriod, 82),
	},
}

var nordic = Driver{
	Variant:     VariantNordic,
	PayloadType: "Nordic",
	Length:      LengthNordic,
	Fields: append(
		[]records.Field{counter(KeyTimestamp, 0)},
		append(nordicPeriod("pp1", 8), nordicPeriod("pp2", 52)...)...,
	),
}

// nordicPeriod lays out one 22-byte sub-period block starting at hex offset start.
func nordicPeriod(suffix string, start int) []records.Field {
	return []records.Field{
		counter("timestamp"+suffix, start),
		counter("energy"+suffix, start+8),
		counter("volume"+suffix, start+16),
		power("power"+suffix, start+24),
		flow("flow"+suffix, start+30),
		temperature("temp1"+suffix, start+36),
		temperature("temp2"+suffix, start+40),
	}
}

var nordicWithCool = Driver{
	Variant:     VariantNordicWithCool,
	PayloadType: "Nordic with cooling",
	Length:      LengthNordicWithCool,
	Fields: []records.Field{
		counter(KeyTimestamp, 0),
		counter("timestamppp1", 8),
		counter("energyhpp1", 16),
		counter("energycpp1", 24),
		counter("volumepp1", 32),
		power("powerpp1", 40),
		flow("flowpp1", 46),
		temperature("temp1pp1", 52),
		temperature("temp2pp1", 56),
	},
}
