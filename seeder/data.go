package seeder

// Sample data pools for generated records.

var listingTitles = []string{
	"Luxury Downtown Apartment",
	"Cozy Beach House",
	"Modern City Loft",
	"Charming Cottage",
	"Spacious Family Home",
	"Beachfront Villa",
	"Mountain Cabin Retreat",
	"Historic Townhouse",
	"Studio in Arts District",
	"Garden View Apartment",
	"Penthouse Suite",
	"Rustic Country House",
	"Contemporary Condo",
	"Elegant Victorian Home",
	"Minimalist Urban Space",
	"Lakefront Property",
	"Desert Oasis Villa",
	"Ski Lodge Chalet",
	"Tropical Paradise",
	"Metropolitan High-Rise",
}

var listingDescriptions = []string{
	"Beautiful property with stunning views and modern amenities perfect for your stay.",
	"Ideal for families and groups, featuring spacious rooms and excellent location.",
	"Prime location with easy access to attractions, shopping and entertainment venues.",
	"Newly renovated with high-end finishes and all the comforts of home.",
	"Quiet neighborhood setting with peaceful surroundings and great accessibility.",
	"Open floor plan perfect for relaxation and entertaining during your visit.",
	"Fully equipped property with everything you need for a memorable stay.",
	"Historic charm combined with modern conveniences and unique character.",
	"Perfect for business travelers and tourists seeking comfort and convenience.",
	"Exceptional property offering luxury amenities and unforgettable experiences.",
}

var listingLocations = []string{
	"Downtown Manhattan, New York",
	"Santa Monica, Los Angeles",
	"Lincoln Park, Chicago",
	"South Beach, Miami",
	"Capitol Hill, Seattle",
	"French Quarter, New Orleans",
	"Nob Hill, San Francisco",
	"Back Bay, Boston",
	"Uptown, Dallas",
	"Pearl District, Portland",
	"Midtown, Atlanta",
	"Gaslamp Quarter, San Diego",
	"River North, Chicago",
	"SoHo, New York",
	"Venice Beach, Los Angeles",
	"Georgetown, Washington DC",
	"Fisherman's Wharf, San Francisco",
	"Wynwood, Miami",
	"Capitol Hill, Denver",
	"Old Town, Scottsdale",
}

var guestNames = []string{
	"John Smith", "Sarah Johnson", "Michael Brown", "Emily Davis",
	"David Wilson", "Jessica Garcia", "Christopher Miller", "Amanda Taylor",
	"Matthew Anderson", "Ashley Thomas", "James Jackson", "Jennifer White",
	"Robert Harris", "Lisa Martin", "William Thompson", "Michelle Garcia",
	"Daniel Rodriguez", "Laura Martinez", "Joseph Robinson", "Karen Clark",
}

var reviewComments = []string{
	"Amazing place! Everything was perfect and exactly as described.",
	"Great location and very clean. Would definitely stay again.",
	"Host was very responsive and helpful. Highly recommended!",
	"Beautiful property with stunning views. Loved every minute.",
	"Perfect for our family vacation. Very comfortable and well-equipped.",
	"Excellent value for money. Great amenities and location.",
	"The photos don't do it justice - even better in person!",
	"Wonderful stay, everything we needed was provided.",
	"Very peaceful and relaxing environment. Just what we needed.",
	"Outstanding property with exceptional attention to detail.",
}
