package entity

// LocationTypeCount is the number of providers working from one location type.
type LocationTypeCount struct {
	LocationType LocationType `json:"locationType"`
	Count        int64        `json:"count"`
}

// AdminStats is a point-in-time summary of the whole directory.
type AdminStats struct {
	TotalUsers              int64               `json:"totalUsers"`
	TotalProviders          int64               `json:"totalProviders"`
	TotalClients            int64               `json:"totalClients"`
	MessagesSent            int64               `json:"messagesSent"`
	ProvidersByLocationType []LocationTypeCount `json:"providersByLocationType"`
}
