package grpc

import (
	pb "github.com/dmitrijs2005/playhub-library/internal/proto"
	"github.com/dmitrijs2005/playhub-library/internal/server/models"
	"github.com/dmitrijs2005/playhub-library/internal/timex"
)

func toPBEntry(e *models.LibraryEntry) *pb.LibraryEntry {
	return &pb.LibraryEntry{
		UserId:    e.UserID.String(),
		GameId:    e.GameID.String(),
		Status:    statusFromModel(e.Status),
		CreatedAt: timex.ToProto(e.CreatedAt),
		UpdatedAt: timex.ToProto(e.UpdatedAt),
	}
}

func toPBEntries(entries []*models.LibraryEntry) []*pb.LibraryEntry {
	out := make([]*pb.LibraryEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, toPBEntry(e))
	}
	return out
}
