package grpc

import (
	"fmt"
	"strings"

	pb "github.com/dmitrijs2005/playhub-library/internal/proto"
	"github.com/dmitrijs2005/playhub-library/internal/server/models"
)

const wireStatusPrefix = "GAME_STATUS_"

var (
	wireToModel map[pb.GameStatus]models.GameStatus
	modelToWire map[models.GameStatus]pb.GameStatus
)

func init() {
	var err error
	wireToModel, modelToWire, err = buildStatusTables(pb.GameStatus_name, models.AllGameStatuses)
	if err != nil {
		panic(err)
	}
}

// buildStatusTables pairs every wire enum value with the storage token of the
// same name and fails unless both sides cover each other completely.
func buildStatusTables(wireNames map[int32]string, all []models.GameStatus) (map[pb.GameStatus]models.GameStatus, map[models.GameStatus]pb.GameStatus, error) {
	toModel := make(map[pb.GameStatus]models.GameStatus, len(wireNames))
	toWire := make(map[models.GameStatus]pb.GameStatus, len(wireNames))

	for num, name := range wireNames {
		token := strings.ToLower(strings.TrimPrefix(name, wireStatusPrefix))
		st, ok := models.ParseGameStatus(token)
		if !ok {
			return nil, nil, fmt.Errorf("wire status %s has no storage token", name)
		}
		toModel[pb.GameStatus(num)] = st
		toWire[st] = pb.GameStatus(num)
	}

	for _, st := range all {
		if _, ok := toWire[st]; !ok {
			return nil, nil, fmt.Errorf("storage token %q has no wire status", st)
		}
	}

	return toModel, toWire, nil
}

// statusToModel decodes a wire status. Values outside the enum map to
// unspecified.
func statusToModel(s pb.GameStatus) models.GameStatus {
	if st, ok := wireToModel[s]; ok {
		return st
	}
	return models.GameStatusUnspecified
}

// statusFromModel encodes a storage token. Unknown tokens map to
// GAME_STATUS_UNSPECIFIED.
func statusFromModel(s models.GameStatus) pb.GameStatus {
	if st, ok := modelToWire[s]; ok {
		return st
	}
	return pb.GameStatus_GAME_STATUS_UNSPECIFIED
}
