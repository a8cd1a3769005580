package models

// DashboardStats are the admin panel KPIs.
type DashboardStats struct {
	Members            int `json:"members"`
	Categories         int `json:"categories"`
	CommunityMembers   int `json:"communityMembers"`
	ContactSubmissions int `json:"contactSubmissions"`
	BusinessLeads      int `json:"businessLeads"`
}
