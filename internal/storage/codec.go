package storage

import (
	"encoding/json"
	"errors"
	"time"

	"creatures/internal/model"
	"creatures/internal/nn"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

func EncodeBrain(b model.BrainRecord) ([]byte, error) {
	return json.Marshal(b)
}

func DecodeBrain(data []byte) (model.BrainRecord, error) {
	var brain model.BrainRecord
	if err := json.Unmarshal(data, &brain); err != nil {
		return model.BrainRecord{}, err
	}
	if err := checkVersion(brain.VersionedRecord); err != nil {
		return model.BrainRecord{}, err
	}
	return brain, nil
}

// BrainRecordFromNetwork captures the layer membership of network under id.
func BrainRecordFromNetwork(id string, network *nn.Network) model.BrainRecord {
	descriptors := network.Descriptors()
	layers := make([]model.LayerRecord, len(descriptors))
	for i, descriptor := range descriptors {
		layers[i] = model.LayerRecord{Neurons: append([]string(nil), descriptor.Neurons...)}
	}
	return model.BrainRecord{
		VersionedRecord: model.VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion},
		ID:              id,
		Layers:          layers,
		CreatedAt:       time.Now().UTC(),
	}
}

func checkVersion(v model.VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}
