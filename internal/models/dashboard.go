package models

// DashboardStats summarises the CRM state for the dashboard page
type DashboardStats struct {
	TotalCustomers  int64             `json:"totalCustomers"`
	TotalOrders     int64             `json:"totalOrders"`
	TotalRevenue    float64           `json:"totalRevenue"`
	TotalCampaigns  int64             `json:"totalCampaigns"`
	RecentCampaigns []CampaignSummary `json:"recentCampaigns"`
}

// CampaignSummary is a compact campaign view with its delivery rate
type CampaignSummary struct {
	Campaign    *Campaign `json:"campaign"`
	SuccessRate float64   `json:"successRate"`
}
